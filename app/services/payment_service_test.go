package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/bistro/app/models"
)

type fakePaymentStore struct {
	calls  []string
	err    error
	record *models.Payment
}

func (f *fakePaymentStore) Insert(_ context.Context, p *models.Payment) (string, error) {
	f.calls = append(f.calls, "insert")
	if f.err != nil {
		return "", f.err
	}
	f.record = p
	return "652c155b2c4774f05c36ee00", nil
}

type fakeCartClearer struct {
	calls   *[]string
	deleted int64
	err     error
	gotIDs  []string
}

func (f *fakeCartClearer) DeleteMany(_ context.Context, ids []string) (int64, error) {
	*f.calls = append(*f.calls, "clear")
	f.gotIDs = ids
	return f.deleted, f.err
}

func testPayment() *models.Payment {
	return &models.Payment{
		Email:         "diner@example.com",
		Price:         24.5,
		TransactionID: "pi_3Nxy",
		CartIDs:       []string{"652c155b2c4774f05c36ee01", "652c155b2c4774f05c36ee02"},
		MenuItemIDs:   []string{"642c155b2c4774f05c36eeaa", "legacy-dish"},
		Status:        "pending",
	}
}

func TestRecordPaymentPersistsBeforeClearing(t *testing.T) {
	store := &fakePaymentStore{}
	carts := &fakeCartClearer{calls: &store.calls, deleted: 2}
	svc := NewPaymentService(store, carts, nil, nil)

	result, err := svc.RecordPayment(context.Background(), testPayment())
	require.NoError(t, err)

	assert.Equal(t, []string{"insert", "clear"}, store.calls, "payment must be durable before cart rows go")
	assert.True(t, result.CartCleared)
	assert.Equal(t, int64(2), result.Deleted.DeletedCount)
	assert.Equal(t, testPayment().CartIDs, carts.gotIDs)
}

func TestRecordPaymentInsertFailureStopsEverything(t *testing.T) {
	store := &fakePaymentStore{err: errors.New("mongo down")}
	carts := &fakeCartClearer{calls: &store.calls}
	svc := NewPaymentService(store, carts, nil, nil)

	_, err := svc.RecordPayment(context.Background(), testPayment())
	require.Error(t, err)
	assert.Equal(t, []string{"insert"}, store.calls, "cart must be untouched when the payment did not persist")
}

func TestRecordPaymentClearFailureIsPartial(t *testing.T) {
	store := &fakePaymentStore{}
	carts := &fakeCartClearer{calls: &store.calls, err: errors.New("mongo hiccup")}
	svc := NewPaymentService(store, carts, nil, nil)

	result, err := svc.RecordPayment(context.Background(), testPayment())
	require.NoError(t, err, "the order stands once the payment is saved")
	assert.False(t, result.CartCleared)
	assert.Equal(t, int64(0), result.Deleted.DeletedCount)
	assert.NotNil(t, store.record)
}

func TestRecordPaymentNotifyFailureIsSwallowed(t *testing.T) {
	store := &fakePaymentStore{}
	carts := &fakeCartClearer{calls: &store.calls, deleted: 2}

	notified := false
	notify := func(_ context.Context, p *models.Payment) error {
		notified = true
		return errors.New("smtp down")
	}
	svc := NewPaymentService(store, carts, nil, notify)

	result, err := svc.RecordPayment(context.Background(), testPayment())
	require.NoError(t, err)
	assert.True(t, notified)
	assert.True(t, result.CartCleared)
}

func TestRecordPaymentEmptyCart(t *testing.T) {
	store := &fakePaymentStore{}
	carts := &fakeCartClearer{calls: &store.calls}
	svc := NewPaymentService(store, carts, nil, nil)

	p := testPayment()
	p.CartIDs = nil

	result, err := svc.RecordPayment(context.Background(), p)
	require.NoError(t, err)
	assert.True(t, result.CartCleared)
	assert.Equal(t, int64(0), result.Deleted.DeletedCount)
}
