package interact

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CafeRush_Go/internal/domain"
)

func TestResolveStationBySubPart(t *testing.T) {
	reg := NewRegistry()
	reg.RegisterStation(StationEspresso, "espresso_machine/lever", "espresso_machine/portafilter")

	e, err := reg.Resolve("espresso_machine/lever")
	require.NoError(t, err)
	assert.Equal(t, KindStation, e.Kind)
	assert.Equal(t, StationEspresso, e.Station)

	root, err := reg.Resolve(string(StationEspresso))
	require.NoError(t, err)
	assert.Equal(t, e, root)
}

func TestResolveCustomerSubPartsShareRoot(t *testing.T) {
	reg := NewRegistry()
	id := uuid.New()
	reg.RegisterCustomer(id, id.String()+"/head", id.String()+"/body")

	e, err := reg.Resolve(id.String() + "/head")
	require.NoError(t, err)
	assert.Equal(t, KindCustomer, e.Kind)
	assert.Equal(t, id, e.CustomerID)
}

func TestResolveUnknownTarget(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Resolve("ceiling_fan")
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
}

func TestDeregisterRemovesSubParts(t *testing.T) {
	reg := NewRegistry()
	id := uuid.New()
	reg.RegisterCustomer(id, id.String()+"/head")

	reg.Deregister(id.String())

	_, err := reg.Resolve(id.String())
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
	_, err = reg.Resolve(id.String() + "/head")
	assert.ErrorIs(t, err, domain.ErrUnknownEntity)
}

func TestReregisterOverwrites(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Entity{ID: "counter", Kind: KindTrash})
	reg.RegisterStation(StationCups)

	reg.Register(Entity{ID: "counter", Kind: KindStation, Station: StationCups})
	e, err := reg.Resolve("counter")
	require.NoError(t, err)
	assert.Equal(t, KindStation, e.Kind)
}
