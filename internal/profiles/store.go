// Package profiles provides read-only lookup of driver, constructor and
// circuit performance profiles.
package profiles

import "github.com/yourusername/pitwall/internal/models"

// Store serves the static profile tables. All lookups are total: unknown
// names resolve to a documented neutral default instead of an error, so a
// caller can never tell an unknown entity apart from a known mid-pack one.
// The store is immutable after construction and safe for concurrent use.
type Store struct {
	drivers      map[string]models.DriverProfile
	constructors map[string]models.ConstructorProfile
	circuits     map[string]models.CircuitProfile
}

// NewStore creates a store backed by the built-in 2025 season tables.
func NewStore() *Store {
	return &Store{
		drivers:      driverTable,
		constructors: constructorTable,
		circuits:     circuitTable,
	}
}

// Driver returns the profile for a driver name, defaulted for unknown names.
func (s *Store) Driver(name string) models.DriverProfile {
	if p, ok := s.drivers[name]; ok {
		return p
	}
	return defaultDriver
}

// Constructor returns the profile for a team name, defaulted for unknown names.
func (s *Store) Constructor(name string) models.ConstructorProfile {
	if p, ok := s.constructors[name]; ok {
		return p
	}
	return defaultConstructor
}

// Circuit returns the profile for a circuit name, defaulted for unknown names.
func (s *Store) Circuit(name string) models.CircuitProfile {
	if p, ok := s.circuits[name]; ok {
		return p
	}
	return defaultCircuit
}

// BaseWinChance returns the constructor's point-scale strength for the
// win-likelihood heuristic.
func (s *Store) BaseWinChance(constructor string) float64 {
	if v, ok := baseWinChance[constructor]; ok {
		return v
	}
	return defaultBaseWinChance
}

// IsWetSpecialist reports whether a driver gets wet-weather boosts.
func (s *Store) IsWetSpecialist(driver string) bool {
	return wetSpecialists[driver]
}
