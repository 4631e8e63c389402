package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrderStatusValid(t *testing.T) {
	for _, status := range []OrderStatus{OrderPending, OrderAccepted, OrderPreparing, OrderReady, OrderCompleted, OrderCancelled} {
		require.True(t, status.Valid(), string(status))
	}
	require.False(t, OrderStatus("shipped").Valid())
	require.False(t, OrderStatus("").Valid())
}

func TestOrderTypeValid(t *testing.T) {
	require.True(t, OrderPickup.Valid())
	require.True(t, OrderDelivery.Valid())
	require.False(t, OrderType("dine-in").Valid())
}

func TestCupSizeValid(t *testing.T) {
	for _, size := range []CupSize{SizeSmall, SizeMedium, SizeLarge} {
		require.True(t, size.Valid(), string(size))
	}
	require.False(t, CupSize("venti").Valid())
}

func TestStoreStatusValid(t *testing.T) {
	require.True(t, StoreOpen.Valid())
	require.True(t, StoreClosed.Valid())
	require.False(t, StoreStatus("renovating").Valid())
}

func TestCoffeeStatusValid(t *testing.T) {
	require.True(t, CoffeeActive.Valid())
	require.True(t, CoffeeInactive.Valid())
	require.False(t, CoffeeStatus("seasonal").Valid())
}
