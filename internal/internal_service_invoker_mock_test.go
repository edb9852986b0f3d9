// Copyright (c) 2017-2020 Uber Technologies Inc.
// Portions of the Software are attributed to Copyright (c) 2020 Temporal Technologies Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

package internal

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServiceInvoker_RegistersThroughMockedServiceClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockServiceClient(ctrl)
	client.EXPECT().RegisterDomain(gomock.Any(), "example-domain").Return(nil)

	inv := newServiceInvoker(zap.NewNop())
	err := inv.registerIdempotent(context.Background(), func() error {
		return client.RegisterDomain(context.Background(), "example-domain")
	})
	require.NoError(t, err)
}

func TestServiceInvoker_RegisterIdempotentOverMockedAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := NewMockServiceClient(ctrl)
	client.EXPECT().RegisterDomain(gomock.Any(), "example-domain").Return(&AlreadyExistsError{Message: "domain example-domain"})

	inv := newServiceInvoker(zap.NewNop())
	err := inv.registerIdempotent(context.Background(), func() error {
		return client.RegisterDomain(context.Background(), "example-domain")
	})
	require.NoError(t, err)
}
