package dashboard

import (
	"context"

	"pressdeck/internal/model"
	"pressdeck/pkg/logger"
)

// Bus is the subscribe side of the change bus.
type Bus interface {
	Subscribe(ctx context.Context, resource string) (<-chan model.Change, error)
}

type Dashboard struct {
	bus      Bus
	sections []SectionView
}

func New(bus Bus, sections ...SectionView) *Dashboard {
	return &Dashboard{
		bus:      bus,
		sections: sections,
	}
}

// Start loads every section and begins refreshing them on change
// events. It returns once the watchers are installed; sections load in
// the background and report Loading until their first response.
func (d *Dashboard) Start(ctx context.Context) error {
	for _, s := range d.sections {
		s.Load(ctx)
	}
	if d.bus == nil {
		return nil
	}

	byResource := make(map[string][]SectionView)
	for _, s := range d.sections {
		byResource[s.Resource()] = append(byResource[s.Resource()], s)
	}
	for resource, sections := range byResource {
		changes, err := d.bus.Subscribe(ctx, resource)
		if err != nil {
			return err
		}
		go d.watch(ctx, sections, changes)
	}
	return nil
}

func (d *Dashboard) watch(ctx context.Context, sections []SectionView, changes <-chan model.Change) {
	log := logger.FromContext(ctx)
	for change := range changes {
		log.Debug("dashboard refresh", "resource", change.Resource, "kind", change.Kind, "id", change.ID)
		for _, s := range sections {
			s.Reload(ctx)
		}
	}
}

// Wait blocks until every section has settled or ctx is done.
func (d *Dashboard) Wait(ctx context.Context) {
	for _, s := range d.sections {
		s.Wait(ctx)
	}
}

// Snapshot projects all sections in registration order.
func (d *Dashboard) Snapshot() []Snapshot {
	out := make([]Snapshot, 0, len(d.sections))
	for _, s := range d.sections {
		out = append(out, s.Snapshot())
	}
	return out
}

// Section returns the named section, nil when absent.
func (d *Dashboard) Section(name string) SectionView {
	for _, s := range d.sections {
		if s.Name() == name {
			return s
		}
	}
	return nil
}

func (d *Dashboard) Close() {
	for _, s := range d.sections {
		s.Close()
	}
}
