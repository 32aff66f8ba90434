package services

import (
	"fmt"
	"time"

	"fleet/internal/core/domain/model/alert"
	"fleet/internal/core/domain/model/order"
	"fleet/internal/core/domain/model/zone"
)

// StatusChangeAlerts builds the alerts for a status change: always one
// "Status Changed" alert and, for Failed, an additional "Order Failed" alert.
func StatusChangeAlerts(ev order.StatusChanged) []alert.Alert {
	related := &alert.Related{Kind: alert.EntityOrder, ID: ev.OrderID}

	alerts := []alert.Alert{mustAlert(
		alert.TypeStatusChanged,
		fmt.Sprintf("Order %s changed from %s to %s", ev.OrderID, ev.From, ev.To),
		alert.PriorityLow, related, ev.At,
	)}
	if ev.To == order.Failed {
		alerts = append(alerts, mustAlert(
			alert.TypeOrderFailed,
			fmt.Sprintf("Order %s failed", ev.OrderID),
			alert.PriorityHigh, related, ev.At,
		))
	}
	return alerts
}

// ZoneEntryAlert builds the alert for a driver entering an exclusion zone.
// No-go zones are High priority, Slow-down zones Medium.
func ZoneEntryAlert(driverID, driverName string, z zone.Zone, at time.Time) alert.Alert {
	priority := alert.PriorityMedium
	if z.ExclusionType == zone.NoGo {
		priority = alert.PriorityHigh
	}
	return mustAlert(
		alert.TypeZoneEntered,
		fmt.Sprintf("Driver %s (%s) entered %s zone %s", driverName, driverID, z.ExclusionType, z.Name),
		priority,
		&alert.Related{Kind: alert.EntityDriver, ID: driverID},
		at,
	)
}

// mustAlert is used with constant priorities and non-empty messages only.
func mustAlert(t alert.Type, msg string, p alert.Priority, related *alert.Related, at time.Time) alert.Alert {
	a, err := alert.New(t, msg, p, related, at)
	if err != nil {
		panic(err)
	}
	return a
}
