// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	initiativeorders "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders"
	initiativeordersmock "github.com/KirkDiggler/vtm-api/internal/repositories/initiative_orders/mock"
	rolllog "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log"
	rolllogmock "github.com/KirkDiggler/vtm-api/internal/repositories/roll_log/mock"
	"github.com/KirkDiggler/vtm-api/internal/rules/initiative"
)

// ExpectOrderGet sets up a mock expectation for loading an order. Each call
// returns a fresh copy, as the real repositories do.
func ExpectOrderGet(ctx context.Context, mockRepo *initiativeordersmock.MockRepository, order *initiative.Order) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, initiativeorders.GetInput{OrderID: order.ID}).
		DoAndReturn(func(_ context.Context, _ initiativeorders.GetInput) (*initiativeorders.GetOutput, error) {
			return &initiativeorders.GetOutput{Order: order.Clone()}, nil
		})
}

// ExpectOrderGetError sets up a mock expectation for a failed order load
func ExpectOrderGetError(ctx context.Context, mockRepo *initiativeordersmock.MockRepository, orderID string, err error) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, initiativeorders.GetInput{OrderID: orderID}).
		Return(nil, err)
}

// ExpectOrderUpdate sets up a mock expectation for saving an order. The
// saved order is copied into saved when it is non-nil.
func ExpectOrderUpdate(ctx context.Context, mockRepo *initiativeordersmock.MockRepository, saved **initiative.Order) *gomock.Call {
	return mockRepo.EXPECT().
		Update(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input initiativeorders.UpdateInput) (*initiativeorders.UpdateOutput, error) {
			if saved != nil {
				*saved = input.Order.Clone()
			}
			return &initiativeorders.UpdateOutput{Order: input.Order}, nil
		})
}

// ExpectRollAppend sets up a mock expectation for appending to the roll log.
// Appended entries are collected into appended when it is non-nil.
func ExpectRollAppend(ctx context.Context, mockRepo *rolllogmock.MockRepository, appended *[]*rolllog.Entry) *gomock.Call {
	return mockRepo.EXPECT().
		Append(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input rolllog.AppendInput) (*rolllog.AppendOutput, error) {
			if appended != nil {
				*appended = append(*appended, input.Entry)
			}
			return &rolllog.AppendOutput{Entry: input.Entry}, nil
		})
}
