package testutil

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// Profile is the smallest persisted shape: a name and a level.
type Profile struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// Item is an inventory entry.
type Item struct {
	ID       string   `json:"id"`
	Quantity int      `json:"quantity"`
	Tags     []string `json:"tags,omitempty"`
}

// SaveGame is a nested document exercising slices, maps, pointers and floats.
type SaveGame struct {
	Player    Profile            `json:"player"`
	Position  [3]float64         `json:"position"`
	Inventory []Item             `json:"inventory"`
	Flags     map[string]bool    `json:"flags"`
	Stats     map[string]float64 `json:"stats,omitempty"`
	Companion *Profile           `json:"companion,omitempty"`
}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = rand.New(rand.NewSource(r.seed))
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

var names = []string{"Ava", "Bram", "Cleo", "Dax", "Eira", "Finn", "Gus", "Hana"}

// Profile returns a random profile.
func (r *RNG) Profile() Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.profileLocked()
}

func (r *RNG) profileLocked() Profile {
	return Profile{
		Name:  names[r.rand.Intn(len(names))],
		Level: 1 + r.rand.Intn(99),
	}
}

// SaveGame returns a random save game.
// Locks only once per call.
func (r *RNG) SaveGame() SaveGame {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := SaveGame{
		Player: r.profileLocked(),
		Position: [3]float64{
			float64(r.rand.Intn(10000)) / 8,
			float64(r.rand.Intn(10000)) / 8,
			float64(r.rand.Intn(10000)) / 8,
		},
		Inventory: make([]Item, r.rand.Intn(16)),
		Flags:     make(map[string]bool),
		Stats: map[string]float64{
			"playtime": float64(r.rand.Intn(1 << 20)),
			"accuracy": float64(r.rand.Intn(1000)) / 1000,
		},
	}
	for i := range s.Inventory {
		s.Inventory[i] = Item{
			ID:       fmt.Sprintf("item-%03d", r.rand.Intn(500)),
			Quantity: 1 + r.rand.Intn(64),
		}
		if r.rand.Intn(2) == 0 {
			s.Inventory[i].Tags = []string{"quest"}
		}
	}
	for i := range r.rand.Intn(8) {
		s.Flags[fmt.Sprintf("door-%d", i)] = r.rand.Intn(2) == 0
	}
	if r.rand.Intn(2) == 0 {
		c := r.profileLocked()
		s.Companion = &c
	}
	return s
}

// SaveGames returns num random save games.
func (r *RNG) SaveGames(num int) []SaveGame {
	out := make([]SaveGame, num)
	for i := range out {
		out[i] = r.SaveGame()
	}
	return out
}

// WriteFile writes content to dir/name, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("testutil: mkdir %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("testutil: write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path.
func ReadFile(t testing.TB, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("testutil: read %s: %v", path, err)
	}
	return string(data)
}
