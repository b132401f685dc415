// Package parcelrepo provides data transfer objects and mapping functions for
// parcel persistence. The package covers the parcel aggregate itself plus its
// append-only status history table.
package parcelrepo

import (
	"time"

	"parcelms/internal/core/domain/model/kernel"
	"parcelms/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

// ParcelDTO represents the database structure for persisting parcel aggregates.
type ParcelDTO struct {
	ID                  int64  `gorm:"primaryKey;autoIncrement"`
	ClientID            int64  `gorm:"index;not null"`
	TrackingNumber      string `gorm:"type:varchar(12);uniqueIndex;not null"`
	FromLocation        string `gorm:"not null"`
	ToLocation          string `gorm:"not null"`
	PickupLat           *decimal.Decimal `gorm:"type:decimal(10,7)"`
	PickupLng           *decimal.Decimal `gorm:"type:decimal(10,7)"`
	DropLat             *decimal.Decimal `gorm:"type:decimal(10,7)"`
	DropLng             *decimal.Decimal `gorm:"type:decimal(10,7)"`
	Weight              decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Height              decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Width               decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Breadth             decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	Price               decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	DistanceKm          decimal.Decimal  `gorm:"type:decimal(10,2);not null"`
	CurrentStatus       string           `gorm:"type:varchar(20);index;not null"`
	Description         string
	SpecialInstructions string
	Version             int64     `gorm:"not null;default:1"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the database table name for parcel entities.
func (ParcelDTO) TableName() string {
	return "parcels"
}

// HistoryEntryDTO represents one row of the parcel status audit trail.
type HistoryEntryDTO struct {
	ID        int64  `gorm:"primaryKey;autoIncrement"`
	ParcelID  int64  `gorm:"index;not null"`
	Status    string `gorm:"type:varchar(20);not null"`
	Location  string
	Notes     string
	CreatedBy *int64
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for history entries.
func (HistoryEntryDTO) TableName() string {
	return "parcel_status_history"
}

// fromDomain converts a parcel aggregate to its database representation.
func fromDomain(aggregate *parcel.Parcel) ParcelDTO {
	route := aggregate.Route()
	dims := aggregate.Dimensions()

	dto := ParcelDTO{
		ID:                  aggregate.ID(),
		ClientID:            aggregate.ClientID(),
		TrackingNumber:      aggregate.TrackingNumber().String(),
		FromLocation:        route.From(),
		ToLocation:          route.To(),
		Weight:              dims.Weight(),
		Height:              dims.Height(),
		Width:               dims.Width(),
		Breadth:             dims.Breadth(),
		Price:               aggregate.Price(),
		DistanceKm:          aggregate.DistanceKm(),
		CurrentStatus:       string(aggregate.Status()),
		Description:         aggregate.Description(),
		SpecialInstructions: aggregate.SpecialInstructions(),
		Version:             aggregate.Version(),
	}

	if pickup := route.Pickup(); pickup != nil {
		lat, lng := pickup.Lat(), pickup.Lng()
		dto.PickupLat, dto.PickupLng = &lat, &lng
	}
	if drop := route.Drop(); drop != nil {
		lat, lng := drop.Lat(), drop.Lng()
		dto.DropLat, dto.DropLng = &lat, &lng
	}

	return dto
}

// toDomain converts a database DTO to a parcel aggregate.
func toDomain(dto ParcelDTO) (*parcel.Parcel, error) {
	tn, err := kernel.TrackingNumberFromString(dto.TrackingNumber)
	if err != nil {
		return nil, err
	}

	pickup, err := optionalPoint(dto.PickupLat, dto.PickupLng)
	if err != nil {
		return nil, err
	}
	drop, err := optionalPoint(dto.DropLat, dto.DropLng)
	if err != nil {
		return nil, err
	}

	route, err := parcel.NewRoute(dto.FromLocation, dto.ToLocation, pickup, drop)
	if err != nil {
		return nil, err
	}

	dims, err := parcel.NewDimensions(dto.Weight, dto.Height, dto.Width, dto.Breadth)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(
		dto.ID,
		dto.ClientID,
		tn,
		route,
		dims,
		dto.DistanceKm,
		dto.Price,
		parcel.Status(dto.CurrentStatus),
		dto.Description,
		dto.SpecialInstructions,
		dto.Version,
	)
}

func optionalPoint(lat, lng *decimal.Decimal) (*kernel.GeoPoint, error) {
	if lat == nil || lng == nil {
		return nil, nil
	}

	point, err := kernel.NewGeoPoint(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &point, nil
}

// historyFromDomain converts a history entry to its database representation.
func historyFromDomain(entry *parcel.HistoryEntry) HistoryEntryDTO {
	return HistoryEntryDTO{
		ID:        entry.ID(),
		ParcelID:  entry.ParcelID(),
		Status:    string(entry.Status()),
		Location:  entry.Location(),
		Notes:     entry.Notes(),
		CreatedBy: entry.CreatedBy(),
	}
}
