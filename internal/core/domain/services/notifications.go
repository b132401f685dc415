package services

import (
	"fmt"

	"parcelms/internal/core/domain/model/notification"
	"parcelms/internal/core/domain/model/parcel"

	"github.com/shopspring/decimal"
)

var driverStatusMessages = map[parcel.Status]string{
	parcel.StatusPickedUp:       "Your parcel has been picked up by the driver",
	parcel.StatusInTransit:      "Your parcel is in transit",
	parcel.StatusOutForDelivery: "Your parcel is out for delivery",
	parcel.StatusDelivered:      "Your parcel has been delivered successfully",
}

// ParcelCreatedNotification builds the client notification emitted after a
// parcel is created and priced.
func ParcelCreatedNotification(
	clientID, parcelID int64, trackingNumber string, price decimal.Decimal,
) (*notification.Notification, error) {
	return notification.New(
		clientID,
		&parcelID,
		notification.TypeParcelCreated,
		"Parcel Created Successfully",
		fmt.Sprintf(
			"Your parcel with tracking number %s has been created. Total price: ₹%s",
			trackingNumber, price.StringFixed(2),
		),
	)
}

// ParcelAcceptedNotification builds the client notification emitted when an
// administrator accepts a parcel.
func ParcelAcceptedNotification(
	clientID, parcelID int64, trackingNumber string,
) (*notification.Notification, error) {
	return notification.New(
		clientID,
		&parcelID,
		notification.TypeStatusUpdate,
		"Parcel Accepted",
		fmt.Sprintf(
			"Your parcel %s has been accepted and is awaiting driver assignment",
			trackingNumber,
		),
	)
}

// ParcelCancelledNotification builds the client notification emitted when an
// administrator rejects a parcel.
func ParcelCancelledNotification(
	clientID, parcelID int64, trackingNumber string,
) (*notification.Notification, error) {
	return notification.New(
		clientID,
		&parcelID,
		notification.TypeCancelled,
		"Parcel Cancelled",
		fmt.Sprintf("Your parcel %s has been cancelled", trackingNumber),
	)
}

// DriverAssignedNotification builds the client notification emitted when an
// administrator assigns a driver to a parcel.
func DriverAssignedNotification(
	clientID, parcelID int64, driverName, trackingNumber string,
) (*notification.Notification, error) {
	return notification.New(
		clientID,
		&parcelID,
		notification.TypeStatusUpdate,
		"Driver Assigned",
		fmt.Sprintf(
			"Driver %s has been assigned to your parcel %s",
			driverName, trackingNumber,
		),
	)
}

// StatusUpdateNotification builds the client notification for a driver-made
// status change. Returns nil for statuses that carry no client message.
func StatusUpdateNotification(
	clientID, parcelID int64, status parcel.Status, trackingNumber string,
) (*notification.Notification, error) {
	message, ok := driverStatusMessages[status]
	if !ok {
		return nil, nil
	}

	typ := notification.TypeStatusUpdate
	if status == parcel.StatusDelivered {
		typ = notification.TypeDelivered
	}

	return notification.New(
		clientID,
		&parcelID,
		typ,
		"Parcel Status Update",
		fmt.Sprintf("%s. Tracking: %s", message, trackingNumber),
	)
}
