// Package config loads and watches the katas configuration file (katas.yaml).
//
// Top-level types:
//   - Config{LogLevel, MetricsPath, Fixtures} — full config tree parsed from YAML
//   - Fixtures{Cooking, Infiltration} — the demonstration arguments the menu
//     passes to the calculator and the rules
//   - CookingFixtures — remaining_elapsed_minutes, preparation_layers,
//     total_layers, total_elapsed_minutes
//   - InfiltrationFixtures — one types.Party per rule: fast_attack, spy,
//     signal_prisoner, free_prisoner
//
// Load(path) reads the YAML file, applies defaults (the scenario the menu has
// always shown: oven 30 min, 2 layers, 3 layers + 20 min, and the four party
// snapshots), then validates enums and layer counts. Default() returns the
// same tree without reading a file.
//
// Watch(ctx, path, log, onChange) watches the file's parent directory with
// fsnotify and reacts only to Write and Create events whose cleaned name is
// the config path. Watching the directory keeps the watch alive when an
// editor saves by renaming a temp file over the config, which arrives as
// Create. Each matching event reloads the file; a file that fails to load is
// logged on the supplied logger and onChange is not called, so the caller
// keeps its current fixtures.
package config
