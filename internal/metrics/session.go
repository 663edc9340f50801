package metrics

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"sync"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"
	"google.golang.org/protobuf/proto"
)

// Metric family names written by Session.
const (
	SelectionsTotal      = "katas_menu_selections_total"
	RuleEvaluationsTotal = "katas_rule_evaluations_total"
	CookingMinutes       = "katas_cooking_minutes"
)

// Label names.
const (
	labelSession  = "session"
	labelOption   = "option"
	labelRule     = "rule"
	labelOutcome  = "outcome"
	labelQuantity = "quantity"
)

type ruleKey struct {
	rule    string
	outcome bool
}

// Session accumulates counters for one menu session.
//
// All exported methods are safe for concurrent use.
type Session struct {
	id string

	mu          sync.Mutex
	selections  map[string]float64
	evaluations map[ruleKey]float64
	cooking     map[string]float64
}

// NewSession returns an empty Session labelled with id.
func NewSession(id string) *Session {
	return &Session{
		id:          id,
		selections:  make(map[string]float64),
		evaluations: make(map[ruleKey]float64),
		cooking:     make(map[string]float64),
	}
}

// ID returns the session label value.
func (s *Session) ID() string { return s.id }

// Selection counts one menu selection.
func (s *Session) Selection(option string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[option]++
}

// RuleEvaluated counts one rule evaluation and its outcome.
func (s *Session) RuleEvaluated(rule string, outcome bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evaluations[ruleKey{rule, outcome}]++
}

// CookingMinutes records the latest value computed for quantity.
func (s *Session) CookingMinutes(quantity string, minutes int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cooking[quantity] = float64(minutes)
}

// Gather returns the session's metric families, ordered by name with samples
// ordered by label values. Families without samples are omitted.
func (s *Session) Gather() []*dto.MetricFamily {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*dto.MetricFamily

	if len(s.selections) > 0 {
		mf := newFamily(SelectionsTotal, "Menu selections read in this session.", dto.MetricType_COUNTER)
		for _, option := range sortedKeys(s.selections) {
			mf.Metric = append(mf.Metric, s.counter(s.selections[option], labelOption, option))
		}
		out = append(out, mf)
	}

	if len(s.evaluations) > 0 {
		keys := make([]ruleKey, 0, len(s.evaluations))
		for k := range s.evaluations {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if keys[i].rule != keys[j].rule {
				return keys[i].rule < keys[j].rule
			}
			return !keys[i].outcome && keys[j].outcome
		})
		mf := newFamily(RuleEvaluationsTotal, "Infiltration rule evaluations by outcome.", dto.MetricType_COUNTER)
		for _, k := range keys {
			mf.Metric = append(mf.Metric, s.counter(s.evaluations[k],
				labelOutcome, strconv.FormatBool(k.outcome),
				labelRule, k.rule,
			))
		}
		out = append(out, mf)
	}

	if len(s.cooking) > 0 {
		mf := newFamily(CookingMinutes, "Last computed lasagna duration in minutes.", dto.MetricType_GAUGE)
		for _, q := range sortedKeys(s.cooking) {
			m := &dto.Metric{
				Label: s.labels(labelQuantity, q),
				Gauge: &dto.Gauge{Value: proto.Float64(s.cooking[q])},
			}
			mf.Metric = append(mf.Metric, m)
		}
		out = append(out, mf)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].GetName() < out[j].GetName() })
	return out
}

// WriteTo encodes the session in the Prometheus text format.
func (s *Session) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, mf := range s.Gather() {
		n, err := expfmt.MetricFamilyToText(w, mf)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("metrics: encode %s: %w", mf.GetName(), err)
		}
	}
	return total, nil
}

// WriteFile writes the session to path, replacing any existing file.
func (s *Session) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("metrics: create file: %w", err)
	}
	if _, err := s.WriteTo(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("metrics: close file: %w", err)
	}
	return nil
}

func newFamily(name, help string, typ dto.MetricType) *dto.MetricFamily {
	return &dto.MetricFamily{
		Name: proto.String(name),
		Help: proto.String(help),
		Type: typ.Enum(),
	}
}

func (s *Session) counter(v float64, kv ...string) *dto.Metric {
	return &dto.Metric{
		Label:   s.labels(kv...),
		Counter: &dto.Counter{Value: proto.Float64(v)},
	}
}

// labels builds label pairs from name/value pairs given in name order and
// appends the session label.
func (s *Session) labels(kv ...string) []*dto.LabelPair {
	pairs := make([]*dto.LabelPair, 0, len(kv)/2+1)
	for i := 0; i+1 < len(kv); i += 2 {
		pairs = append(pairs, &dto.LabelPair{Name: proto.String(kv[i]), Value: proto.String(kv[i+1])})
	}
	pairs = append(pairs, &dto.LabelPair{Name: proto.String(labelSession), Value: proto.String(s.id)})
	return pairs
}

func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
