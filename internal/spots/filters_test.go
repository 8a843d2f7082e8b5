package spots

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func rangedSpot(number int, service ServiceCategory, min, max float64) Spot {
	return Spot{
		Number:        number,
		Service:       service,
		Status:        StatusRegular,
		IsActive:      true,
		MotoriseRange: &VehicleLengthRange{Min: min, Max: max},
	}
}

func TestAcceptsVehicleType(t *testing.T) {
	spot := rangedSpot(12, ServiceTwoServices, 20, 35)

	assert.True(t, AcceptsVehicleType(&spot, VehicleMotorise))
	assert.False(t, AcceptsVehicleType(&spot, VehicleFifthwheel))
	assert.False(t, AcceptsVehicleType(&spot, VehicleTente))

	spot.Tente = true
	assert.True(t, AcceptsVehicleType(&spot, VehicleTente))
}

func TestAcceptsVehicleLength(t *testing.T) {
	spot := rangedSpot(12, ServiceTwoServices, 20, 35)

	assert.True(t, AcceptsVehicleLength(&spot, VehicleMotorise, 30))
	assert.True(t, AcceptsVehicleLength(&spot, VehicleMotorise, 20))
	assert.True(t, AcceptsVehicleLength(&spot, VehicleMotorise, 35))
	assert.False(t, AcceptsVehicleLength(&spot, VehicleMotorise, 40))
	assert.False(t, AcceptsVehicleLength(&spot, VehicleMotorise, 19.5))

	// No range set for the type means no acceptance at all.
	assert.False(t, AcceptsVehicleLength(&spot, VehicleRoulotte, 25))

	// Boolean types carry no length constraint.
	spot.TenteRoulotte = true
	assert.True(t, AcceptsVehicleLength(&spot, VehicleTenteRoulotte, 999))
}

func testInventory() []Spot {
	gravel := GroundGravel
	gazon := GroundGazon

	small := rangedSpot(1, ServiceTwoServices, 15, 25)
	small.Sol = &gravel

	large := rangedSpot(2, ServiceThreeServices50A, 30, 45)
	large.FifthwheelRange = &VehicleLengthRange{Min: 30, Max: 45}
	large.Sol = &gazon

	tentOnly := Spot{
		Number:   3,
		Service:  ServiceNature,
		Status:   StatusRegular,
		IsActive: true,
		Tente:    true,
		Sol:      &gazon,
	}

	seasonal := rangedSpot(4, ServiceThreeServices30A, 20, 40)
	seasonal.Status = StatusSeasonal

	inactive := rangedSpot(5, ServiceTwoServices, 20, 40)
	inactive.IsActive = false

	return []Spot{small, large, tentOnly, seasonal, inactive}
}

func TestCascadeBaseExcludesSeasonalAndInactive(t *testing.T) {
	result := Cascade(testInventory(), FilterState{})

	assert.Len(t, result.Spots, 3)
	for _, spot := range result.Spots {
		assert.True(t, spot.IsActive)
		assert.Equal(t, StatusRegular, spot.Status)
	}
	assert.ElementsMatch(t, []ServiceCategory{ServiceThreeServices50A, ServiceTwoServices, ServiceNature}, result.Services)
}

func TestCascadeNarrowsByService(t *testing.T) {
	service := ServiceNature
	state := FilterState{}.SelectService(&service)

	result := Cascade(testInventory(), state)

	assert.Equal(t, []VehicleType{VehicleTente}, result.VehicleTypes)
	assert.Len(t, result.Spots, 1)
	assert.Equal(t, 3, result.Spots[0].Number)
}

func TestCascadeNarrowsByVehicleLength(t *testing.T) {
	vt := VehicleMotorise
	length := 30.0
	state := FilterState{}.SelectVehicleType(&vt).SelectVehicleLength(&length)

	result := Cascade(testInventory(), state)

	// Only the large spot's 30-45 range contains 30 feet.
	assert.Len(t, result.Spots, 1)
	assert.Equal(t, 2, result.Spots[0].Number)
	assert.Equal(t, []GroundType{GroundGazon}, result.Grounds)
}

func TestCascadeLengthIgnoredForBooleanType(t *testing.T) {
	vt := VehicleTente
	length := 50.0
	state := FilterState{VehicleType: &vt, VehicleLength: &length}

	result := Cascade(testInventory(), state)

	assert.Len(t, result.Spots, 1)
	assert.Equal(t, 3, result.Spots[0].Number)
}

func TestCascadeGroundLevel(t *testing.T) {
	ground := GroundGravel
	state := FilterState{}.SelectGround(&ground)

	result := Cascade(testInventory(), state)

	assert.Len(t, result.Spots, 1)
	assert.Equal(t, 1, result.Spots[0].Number)
	// Ground options reflect the levels above, not the ground selection.
	assert.ElementsMatch(t, []GroundType{GroundGravel, GroundGazon}, result.Grounds)
}

func TestSelectHelpersResetLowerLevels(t *testing.T) {
	service := ServiceTwoServices
	vt := VehicleMotorise
	length := 22.0
	ground := GroundGravel

	state := FilterState{}.
		SelectService(&service).
		SelectVehicleType(&vt).
		SelectVehicleLength(&length).
		SelectGround(&ground)

	other := ServiceNature
	state = state.SelectService(&other)

	assert.Nil(t, state.VehicleType)
	assert.Nil(t, state.VehicleLength)
	assert.Nil(t, state.Ground)

	state = FilterState{Service: &service, VehicleType: &vt, VehicleLength: &length, Ground: &ground}
	state = state.SelectVehicleType(&vt)
	assert.Nil(t, state.VehicleLength)
	assert.Nil(t, state.Ground)
	assert.NotNil(t, state.Service)
}
