package shipfixture

import (
	"property-mapper/deferred"
	"property-mapper/property"
)

type ShipArgs struct {
	property.Store

	name string `prop:"shipName"`
	crew int
}

type ShipState struct {
	property.Store

	name string                  `prop:"shipName"`
	home *deferred.Value[string] `prop:"homePort"`
}

// Name is a hand-written accessor the generator must leave alone.
func (v *ShipState) Name() string {
	val, _ := property.Get(v, "shipName")
	out, _ := val.(string)
	return "ship:" + out
}

type NoStore struct {
	name string `prop:"name"`
}
