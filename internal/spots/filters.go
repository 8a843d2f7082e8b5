package spots

// Eligibility predicates and the cascading filter pipeline used by the
// reservation creation flow. The pipeline is pure: callers hold a FilterState
// and recompute the cascade after every selection change.

// AcceptsVehicleType reports whether the spot accepts a vehicle type at all.
// Ranged types are accepted iff the corresponding range is set; boolean types
// iff the corresponding flag is set.
func AcceptsVehicleType(spot *Spot, vehicleType VehicleType) bool {
	switch vehicleType {
	case VehicleMotorise:
		return spot.MotoriseRange != nil
	case VehicleFifthwheel:
		return spot.FifthwheelRange != nil
	case VehicleRoulotte:
		return spot.RoulotteRange != nil
	case VehicleCampeurPorte:
		return spot.CampeurPorte
	case VehicleTenteRoulotte:
		return spot.TenteRoulotte
	case VehicleTente:
		return spot.Tente
	}
	return false
}

// AcceptsVehicleLength reports whether the spot accepts a vehicle of the
// given type and length in feet. Boolean types carry no length constraint.
func AcceptsVehicleLength(spot *Spot, vehicleType VehicleType, length float64) bool {
	if !AcceptsVehicleType(spot, vehicleType) {
		return false
	}
	r := spot.VehicleRange(vehicleType)
	if r == nil {
		return true
	}
	return r.Contains(length)
}

// FilterState is the admin's current selection, one level per field. Levels
// cascade: service, then vehicle type, then length, then ground. Use the
// Select helpers to change a level; they clear every lower level so a stale
// selection can never survive a higher-level change.
type FilterState struct {
	Service       *ServiceCategory
	VehicleType   *VehicleType
	VehicleLength *float64
	Ground        *GroundType
}

// SelectService sets the service level and resets all lower levels.
func (s FilterState) SelectService(service *ServiceCategory) FilterState {
	s.Service = service
	s.VehicleType = nil
	s.VehicleLength = nil
	s.Ground = nil
	return s
}

// SelectVehicleType sets the vehicle-type level and resets the levels below.
func (s FilterState) SelectVehicleType(vehicleType *VehicleType) FilterState {
	s.VehicleType = vehicleType
	s.VehicleLength = nil
	s.Ground = nil
	return s
}

// SelectVehicleLength sets the length level and resets the ground level.
func (s FilterState) SelectVehicleLength(length *float64) FilterState {
	s.VehicleLength = length
	s.Ground = nil
	return s
}

// SelectGround sets the ground level.
func (s FilterState) SelectGround(ground *GroundType) FilterState {
	s.Ground = ground
	return s
}

// CascadeResult carries, for each level, the options still available given
// every selection above it, plus the spots surviving the whole pipeline.
type CascadeResult struct {
	Services     []ServiceCategory `json:"services"`
	VehicleTypes []VehicleType     `json:"vehicle_types"`
	Grounds      []GroundType      `json:"grounds"`
	Spots        []Spot            `json:"spots"`
}

// Cascade runs the filter pipeline over the bookable spots (active, REGULAR
// status) in level order. Each level's option set is computed from the spots
// that survived all prior levels, so option lists shrink as selections are
// made. The length level only filters when the selected vehicle type is
// ranged and a length was supplied.
func Cascade(all []Spot, state FilterState) CascadeResult {
	base := make([]Spot, 0, len(all))
	for _, spot := range all {
		if spot.IsActive && spot.Status == StatusRegular {
			base = append(base, spot)
		}
	}

	result := CascadeResult{
		Services: serviceOptions(base),
	}

	candidates := base
	if state.Service != nil {
		candidates = filterSpots(candidates, func(s *Spot) bool {
			return s.Service == *state.Service
		})
	}

	result.VehicleTypes = vehicleTypeOptions(candidates)

	if state.VehicleType != nil {
		vt := *state.VehicleType
		candidates = filterSpots(candidates, func(s *Spot) bool {
			return AcceptsVehicleType(s, vt)
		})

		if vt.IsRanged() && state.VehicleLength != nil {
			length := *state.VehicleLength
			candidates = filterSpots(candidates, func(s *Spot) bool {
				return AcceptsVehicleLength(s, vt, length)
			})
		}
	}

	result.Grounds = groundOptions(candidates)

	if state.Ground != nil {
		candidates = filterSpots(candidates, func(s *Spot) bool {
			return s.Sol != nil && *s.Sol == *state.Ground
		})
	}

	result.Spots = candidates
	return result
}

func filterSpots(in []Spot, keep func(*Spot) bool) []Spot {
	out := make([]Spot, 0, len(in))
	for i := range in {
		if keep(&in[i]) {
			out = append(out, in[i])
		}
	}
	return out
}

func serviceOptions(spots []Spot) []ServiceCategory {
	present := make(map[ServiceCategory]bool, len(spots))
	for i := range spots {
		present[spots[i].Service] = true
	}
	options := make([]ServiceCategory, 0, len(present))
	for _, svc := range AllServiceCategories {
		if present[svc] {
			options = append(options, svc)
		}
	}
	return options
}

func vehicleTypeOptions(spots []Spot) []VehicleType {
	options := make([]VehicleType, 0, len(AllVehicleTypes))
	for _, vt := range AllVehicleTypes {
		for i := range spots {
			if AcceptsVehicleType(&spots[i], vt) {
				options = append(options, vt)
				break
			}
		}
	}
	return options
}

func groundOptions(spots []Spot) []GroundType {
	present := make(map[GroundType]bool, len(spots))
	for i := range spots {
		if spots[i].Sol != nil {
			present[*spots[i].Sol] = true
		}
	}
	all := []GroundType{GroundGravel, GroundSable, GroundGravelGazon, GroundGravelSable, GroundAsphalte, GroundGazon}
	options := make([]GroundType, 0, len(present))
	for _, g := range all {
		if present[g] {
			options = append(options, g)
		}
	}
	return options
}
