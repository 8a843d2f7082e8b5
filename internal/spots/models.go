package spots

import (
	"time"

	"github.com/google/uuid"
)

// ServiceCategory is the hookup level offered by a spot.
type ServiceCategory string

const (
	ServiceThreeServices30A ServiceCategory = "EEE"   // water/sewer/electricity, 30A
	ServiceThreeServices50A ServiceCategory = "EEE50" // water/sewer/electricity, 50A
	ServiceTwoServices      ServiceCategory = "EE"    // water/electricity
	ServiceNature           ServiceCategory = "NAT"
	ServiceChalet           ServiceCategory = "CHALET"
)

// AllServiceCategories in display order.
var AllServiceCategories = []ServiceCategory{
	ServiceThreeServices30A,
	ServiceThreeServices50A,
	ServiceTwoServices,
	ServiceNature,
	ServiceChalet,
}

func (s ServiceCategory) IsValid() bool {
	switch s {
	case ServiceThreeServices30A, ServiceThreeServices50A, ServiceTwoServices, ServiceNature, ServiceChalet:
		return true
	}
	return false
}

// Status classifies how a spot is rented out.
type Status string

const (
	StatusRegular  Status = "REGULAR"
	StatusSeasonal Status = "SEASONAL"
	StatusBackup   Status = "BACKUP"
	StatusGroup    Status = "GROUP"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusRegular, StatusSeasonal, StatusBackup, StatusGroup:
		return true
	}
	return false
}

// VehicleType is what the camper arrives with. Motorized, fifth-wheel and
// travel-trailer acceptance is governed by a length range; the remaining
// types by a plain flag. A type is never governed by both.
type VehicleType string

const (
	VehicleMotorise     VehicleType = "MOTORISE"
	VehicleFifthwheel   VehicleType = "FIFTHWHEEL"
	VehicleRoulotte     VehicleType = "ROULOTTE"
	VehicleCampeurPorte VehicleType = "CAMPEUR_PORTE"
	VehicleTenteRoulotte VehicleType = "TENTE_ROULOTTE"
	VehicleTente        VehicleType = "TENTE"
)

// RangedVehicleTypes use a {min,max} length range for acceptance.
var RangedVehicleTypes = []VehicleType{VehicleMotorise, VehicleFifthwheel, VehicleRoulotte}

// BooleanVehicleTypes are simply accepted or not.
var BooleanVehicleTypes = []VehicleType{VehicleCampeurPorte, VehicleTenteRoulotte, VehicleTente}

// AllVehicleTypes in display order.
var AllVehicleTypes = []VehicleType{
	VehicleMotorise, VehicleFifthwheel, VehicleRoulotte,
	VehicleCampeurPorte, VehicleTenteRoulotte, VehicleTente,
}

// IsRanged reports whether acceptance of this type is governed by a length
// range rather than a flag.
func (v VehicleType) IsRanged() bool {
	switch v {
	case VehicleMotorise, VehicleFifthwheel, VehicleRoulotte:
		return true
	}
	return false
}

func (v VehicleType) IsValid() bool {
	switch v {
	case VehicleMotorise, VehicleFifthwheel, VehicleRoulotte,
		VehicleCampeurPorte, VehicleTenteRoulotte, VehicleTente:
		return true
	}
	return false
}

// GroundType is the surface of the spot.
type GroundType string

const (
	GroundGravel      GroundType = "GRAVEL"
	GroundSable       GroundType = "SABLE"
	GroundGravelGazon GroundType = "GRAVEL_GAZON"
	GroundGravelSable GroundType = "GRAVEL_SABLE"
	GroundAsphalte    GroundType = "ASPHALTE"
	GroundGazon       GroundType = "GAZON"
)

func (g GroundType) IsValid() bool {
	switch g {
	case GroundGravel, GroundSable, GroundGravelGazon, GroundGravelSable, GroundAsphalte, GroundGazon:
		return true
	}
	return false
}

// VehicleLengthRange is an inclusive acceptable length window in feet.
type VehicleLengthRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether length falls inside the range, inclusive.
func (r VehicleLengthRange) Contains(length float64) bool {
	return length >= r.Min && length <= r.Max
}

// Spot is a physical campsite.
type Spot struct {
	ID      uuid.UUID       `json:"id" gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Number  int             `json:"number" gorm:"uniqueIndex;not null"`
	Service ServiceCategory `json:"service" gorm:"type:varchar(10);not null"`
	Status  Status          `json:"status" gorm:"type:varchar(10);not null;default:'REGULAR'"`

	// Dimensions in feet, sun exposure in percent; unknown when nil.
	Longueur *float64 `json:"longueur"`
	Largeur  *float64 `json:"largeur"`
	Soleil   *int     `json:"soleil"`

	MotoriseRange   *VehicleLengthRange `json:"motorise_range" gorm:"serializer:json"`
	FifthwheelRange *VehicleLengthRange `json:"fifthwheel_range" gorm:"serializer:json"`
	RoulotteRange   *VehicleLengthRange `json:"roulotte_range" gorm:"serializer:json"`

	CampeurPorte  bool `json:"campeur_porte" gorm:"not null;default:false"`
	TenteRoulotte bool `json:"tente_roulotte" gorm:"not null;default:false"`
	Tente         bool `json:"tente" gorm:"not null;default:false"`

	Sol           *GroundType `json:"sol" gorm:"type:varchar(15)"`
	Particularite *string     `json:"particularite"`
	PricePerNight float64     `json:"price_per_night" gorm:"not null"`
	IsActive      bool        `json:"is_active" gorm:"not null;default:true"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Spot) TableName() string {
	return "spots"
}

// VehicleRange returns the length range governing the given ranged vehicle
// type, or nil for boolean types and spots not accepting the type.
func (s *Spot) VehicleRange(vehicleType VehicleType) *VehicleLengthRange {
	switch vehicleType {
	case VehicleMotorise:
		return s.MotoriseRange
	case VehicleFifthwheel:
		return s.FifthwheelRange
	case VehicleRoulotte:
		return s.RoulotteRange
	}
	return nil
}
