package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagemint/pagemint-go/internal/domain/entities/content"
	"github.com/pagemint/pagemint-go/internal/domain/entities/rendering"
)

func sellableProduct() *content.Product {
	return &content.Product{
		ID:       "prod-1",
		OwnerID:  "owner-1",
		Name:     "Widget",
		Price:    9.99,
		Currency: "EUR",
		Attributes: []content.ProductAttribute{
			{Name: "Color", Options: []string{"Red", "Blue"}},
		},
	}
}

func newTestOrderService(t *testing.T, orderRepo *fakeOrderRepo, productRepo *fakeProductRepo) *OrderService {
	t.Helper()
	return NewOrderService(orderRepo, productRepo, newFakeUserRepo(), nil, newTestLogger(t))
}

func validSubmit() rendering.SubmitEvent {
	return rendering.SubmitEvent{
		Fields: rendering.ContactFields{
			FullName: "  Ada Lovelace  ",
			Phone:    "+380501112233",
			City:     "Kyiv",
			Address:  "Khreshchatyk 1",
		},
		Attributes: map[string]string{"Color": "Red"},
	}
}

func TestPlaceOrderStoresNewOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	svc := newTestOrderService(t, orderRepo, newFakeProductRepo(sellableProduct()))

	order, err := svc.PlaceOrder("prod-1", "page-1", validSubmit())
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, StatusNew, order.Status)
	assert.Equal(t, "Ada Lovelace", order.FullName)
	require.NotNil(t, order.PageID)
	assert.Equal(t, "page-1", *order.PageID)
	assert.Equal(t, "Red", order.Attributes["Color"])
	assert.Len(t, orderRepo.orders, 1)
}

func TestPlaceOrderWithoutPageID(t *testing.T) {
	svc := newTestOrderService(t, newFakeOrderRepo(), newFakeProductRepo(sellableProduct()))

	order, err := svc.PlaceOrder("prod-1", "", validSubmit())
	require.NoError(t, err)
	assert.Nil(t, order.PageID)
}

func TestPlaceOrderValidation(t *testing.T) {
	svc := newTestOrderService(t, newFakeOrderRepo(), newFakeProductRepo(sellableProduct()))

	missingName := validSubmit()
	missingName.Fields.FullName = "   "
	_, err := svc.PlaceOrder("prod-1", "", missingName)
	assert.ErrorContains(t, err, "full name")

	missingPhone := validSubmit()
	missingPhone.Fields.Phone = ""
	_, err = svc.PlaceOrder("prod-1", "", missingPhone)
	assert.ErrorContains(t, err, "phone")

	badOption := validSubmit()
	badOption.Attributes = map[string]string{"Color": "Chartreuse"}
	_, err = svc.PlaceOrder("prod-1", "", badOption)
	assert.ErrorContains(t, err, "invalid option")

	badAttribute := validSubmit()
	badAttribute.Attributes = map[string]string{"Material": "Steel"}
	_, err = svc.PlaceOrder("prod-1", "", badAttribute)
	assert.ErrorContains(t, err, "unknown attribute")

	_, err = svc.PlaceOrder("missing", "", validSubmit())
	assert.ErrorContains(t, err, "not found")
}

func TestUpdateStatusFollowsTransitions(t *testing.T) {
	cases := []struct {
		name string
		from string
		to   string
		ok   bool
	}{
		{"new to confirmed", StatusNew, StatusConfirmed, true},
		{"confirmed to shipped", StatusConfirmed, StatusShipped, true},
		{"shipped to done", StatusShipped, StatusDone, true},
		{"new to canceled", StatusNew, StatusCanceled, true},
		{"shipped to canceled", StatusShipped, StatusCanceled, true},
		{"new skips to done", StatusNew, StatusDone, false},
		{"done is terminal", StatusDone, StatusConfirmed, false},
		{"canceled is terminal", StatusCanceled, StatusNew, false},
		{"no backwards move", StatusShipped, StatusConfirmed, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orderRepo := newFakeOrderRepo(&content.Order{
				ID: "order-1", ProductID: "prod-1", Status: tc.from,
			})
			svc := newTestOrderService(t, orderRepo, newFakeProductRepo(sellableProduct()))

			err := svc.UpdateStatus("order-1", "owner-1", tc.to)
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, tc.to, orderRepo.statusUpdates["order-1"])
			} else {
				assert.Error(t, err)
				assert.Empty(t, orderRepo.statusUpdates)
			}
		})
	}
}

func TestUpdateStatusChecksOwnership(t *testing.T) {
	orderRepo := newFakeOrderRepo(&content.Order{
		ID: "order-1", ProductID: "prod-1", Status: StatusNew,
	})
	svc := newTestOrderService(t, orderRepo, newFakeProductRepo(sellableProduct()))

	err := svc.UpdateStatus("order-1", "someone-else", StatusConfirmed)
	assert.ErrorContains(t, err, "not found")
	assert.Empty(t, orderRepo.statusUpdates)
}

func TestUpdateStatusMissingOrder(t *testing.T) {
	svc := newTestOrderService(t, newFakeOrderRepo(), newFakeProductRepo(sellableProduct()))

	err := svc.UpdateStatus("missing", "owner-1", StatusConfirmed)
	assert.ErrorContains(t, err, "not found")
}

func TestListForOwner(t *testing.T) {
	orderRepo := newFakeOrderRepo(
		&content.Order{ID: "order-1", ProductID: "prod-1", Status: StatusNew},
		&content.Order{ID: "order-2", ProductID: "prod-1", Status: StatusConfirmed},
	)
	svc := newTestOrderService(t, orderRepo, newFakeProductRepo(sellableProduct()))

	orders, err := svc.ListForOwner("owner-1")
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}
