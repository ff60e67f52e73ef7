package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/localhub/localhub/internal/core/domain"
)

func TestKey_Deterministic(t *testing.T) {
	loc := &domain.LatLng{Lat: -36.8485, Lng: 174.7633}

	k1 := Key("search", "pizza in Ponsonby", loc, 5000.0, true)
	k2 := Key("search", "pizza in Ponsonby", &domain.LatLng{Lat: -36.8485, Lng: 174.7633}, 5000.0, true)

	assert.Equal(t, k1, k2, "structurally equal arguments must produce identical keys")
}

func TestKey_OrderMatters(t *testing.T) {
	k1 := Key("ns", "a", "b")
	k2 := Key("ns", "b", "a")
	assert.NotEqual(t, k1, k2)
}

func TestKey_AbsentDistinctFromZero(t *testing.T) {
	absent := Key("search", "cafes", nil, nil, false)
	zero := Key("search", "cafes", nil, 0.0, false)
	assert.NotEqual(t, absent, zero, "omitted radius must not collide with radius = 0")
}

func TestKey_NilCoordinate(t *testing.T) {
	var loc *domain.LatLng
	withNil := Key("search", "cafes", loc)
	withValue := Key("search", "cafes", &domain.LatLng{})
	assert.NotEqual(t, withNil, withValue)
}

func TestKey_Namespace(t *testing.T) {
	assert.NotEqual(t, Key("search", "x"), Key("details", "x"))
}
