// Package markers derives map markers from the roster. Derivation is a
// pure composition of the roster snapshot, the location resolver and the
// map projector; it keeps no state of its own and is recomputed in full on
// every call.
package markers

import (
	"log/slog"

	"skireis/internal/location"
	"skireis/internal/projection"
	"skireis/internal/roster"
	"skireis/internal/types"
)

// Service derives the current marker set.
type Service interface {
	Derive() Summary
}

// Summary is the result of one derivation pass. Participants whose
// location cannot be resolved are only counted, never reported as errors:
// the client shows "Mapped of Total on the map" and nothing per row.
type Summary struct {
	Markers  []types.Marker      `json:"markers"`
	Total    int                 `json:"total"`
	Mapped   int                 `json:"mapped"`
	Unmapped int                 `json:"unmapped"`
	Viewport projection.Viewport `json:"viewport"`
}

type markerService struct {
	store     *roster.Store
	resolver  location.Resolver
	projector projection.Projector
	logger    *slog.Logger
}

// NewService creates a marker derivation service over the given store,
// resolver and projector.
func NewService(
	store *roster.Store,
	resolver location.Resolver,
	projector projection.Projector,
	logger *slog.Logger,
) Service {
	return &markerService{
		store:     store,
		resolver:  resolver,
		projector: projector,
		logger:    logger.With("component", "marker-service"),
	}
}

// Derive walks the roster in order and emits one marker per participant
// with a resolvable location. The agreed pickup location takes precedence
// over the home city; a participant with neither produces no marker and
// does not count as unmapped.
func (s *markerService) Derive() Summary {
	participants := s.store.List()

	summary := Summary{
		Markers:  make([]types.Marker, 0, len(participants)),
		Total:    len(participants),
		Viewport: s.projector.Viewport(),
	}

	for _, p := range participants {
		place, isPickup := p.PickupPoint()
		if place == "" {
			continue
		}

		city, found := s.resolver.Resolve(place)
		if !found {
			summary.Unmapped++
			s.logger.Debug("location not resolvable", "participant", p.ID, "location", place)
			continue
		}

		x, y := s.projector.Project(city.Coords())
		summary.Markers = append(summary.Markers, types.Marker{
			ParticipantID:    p.ID,
			X:                x,
			Y:                y,
			BusNr:            p.BusNr,
			Naam:             p.Naam,
			Location:         city.Name,
			IsPickupLocation: isPickup,
		})
	}

	summary.Mapped = len(summary.Markers)
	return summary
}
