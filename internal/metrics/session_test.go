package metrics

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSession = "3f0c2a6e-4b1d-4d8e-9a57-0e4c6f1b2a90"

func populated() *Session {
	s := NewSession(testSession)
	s.Selection("cooking")
	s.Selection("infiltration")
	s.Selection("infiltration")
	s.Selection("quit")
	s.RuleEvaluated("canSpy", true)
	s.RuleEvaluated("canSpy", true)
	s.RuleEvaluated("canFastAttack", false)
	s.CookingMinutes("remaining", 10)
	s.CookingMinutes("remaining", -5) // gauges keep the last value
	s.CookingMinutes("total", 26)
	return s
}

func TestSession_Gather(t *testing.T) {
	mfs := populated().Gather()
	require.Len(t, mfs, 3)

	names := []string{mfs[0].GetName(), mfs[1].GetName(), mfs[2].GetName()}
	assert.Equal(t, []string{CookingMinutes, SelectionsTotal, RuleEvaluationsTotal}, names)

	assert.InDelta(t, 4, Sum(mfs[1]), 0)
	assert.InDelta(t, 3, Sum(mfs[2]), 0)
	assert.Equal(t, map[string]float64{"remaining": -5, "total": 26}, SumBy(mfs[0], "quantity"))
}

func TestSession_Gather_Empty(t *testing.T) {
	assert.Empty(t, NewSession("x").Gather())
}

func TestSession_WriteTo_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	n, err := populated().WriteTo(&buf)
	require.NoError(t, err)
	assert.Equal(t, int64(buf.Len()), n)

	out := buf.String()
	assert.Contains(t, out, "# TYPE katas_menu_selections_total counter")
	assert.Contains(t, out, `katas_menu_selections_total{option="infiltration",session="`+testSession+`"} 2`)
	assert.Contains(t, out, `katas_rule_evaluations_total{outcome="false",rule="canFastAttack",session="`+testSession+`"} 1`)
	assert.Contains(t, out, "# TYPE katas_cooking_minutes gauge")
}

func TestSession_WriteFileThenReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.prom")
	require.NoError(t, populated().WriteFile(path))

	mfs, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t,
		map[string]float64{"cooking": 1, "infiltration": 2, "quit": 1},
		SumBy(mfs[SelectionsTotal], "option"))
	assert.Equal(t,
		map[string]float64{"false": 1, "true": 2},
		SumBy(mfs[RuleEvaluationsTotal], "outcome"))
	assert.Equal(t,
		map[string]float64{testSession: 4},
		SumBy(mfs[SelectionsTotal], "session"))
}

func TestSession_ConcurrentUse(t *testing.T) {
	s := NewSession("race")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s.Selection("cooking")
				s.RuleEvaluated("canSpy", j%2 == 0)
			}
		}()
	}
	wg.Wait()

	mfs := s.Gather()
	require.Len(t, mfs, 2)
	assert.InDelta(t, 800, Sum(mfs[0]), 0)
	assert.InDelta(t, 800, Sum(mfs[1]), 0)
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse(strings.NewReader("# TYPE katas_menu_selections_total bogus\n"))
	assert.Error(t, err)
}

func TestReadFile_Missing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "absent.prom"))
	assert.Error(t, err)
}

func TestSum_Nil(t *testing.T) {
	assert.Zero(t, Sum(nil))
	assert.Empty(t, SumBy(nil, "option"))
}
