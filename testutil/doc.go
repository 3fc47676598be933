// Package testutil provides testing utilities for jsonfile.
//
// This package is intended for use in tests and benchmarks only.
// It provides fixture types shaped like typical persisted game state, a
// seeded generator for them and small file helpers.
//
// # Fixtures
//
//	p := testutil.Profile{Name: "Ava", Level: 3}
//
//	rng := testutil.NewRNG(seed)
//	save := rng.SaveGame()      // nested struct with slices and maps
//	saves := rng.SaveGames(100) // deterministic for a given seed
//
// # Files
//
//	path := testutil.WriteFile(t, t.TempDir(), "broken.json", "{not json")
//	content := testutil.ReadFile(t, path)
package testutil
