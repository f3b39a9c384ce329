package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/ps-vitor/apartment-finder/internal/domain"
	"github.com/ps-vitor/apartment-finder/internal/mocks"
)

func TestFetch(t *testing.T) {
	t.Parallel()

	doc := domain.Document{Value: []interface{}{"a"}}
	ioErr := fmt.Errorf("read data/apartments.json: %w", os.ErrPermission)

	cases := []struct {
		name       string
		loadDoc    domain.Document
		loadErr    error
		wantStatus domain.LoadStatus
		wantErr    error
	}{
		{name: "ok", loadDoc: doc, wantStatus: domain.LoadOK},
		{name: "missing", loadErr: fmt.Errorf("%w: x", domain.ErrListingsNotFound), wantStatus: domain.LoadMissing},
		{name: "malformed", loadErr: fmt.Errorf("decode x: %w", domain.ErrListingsMalformed), wantStatus: domain.LoadMalformed},
		{name: "permission", loadErr: ioErr, wantErr: os.ErrPermission},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockListingRepository(ctrl)
			repo.EXPECT().Load(gomock.Any()).Return(tc.loadDoc, tc.loadErr).Times(1)

			svc := NewListingService(repo, nil)
			res, err := svc.Fetch(context.Background())

			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			if res.Status != tc.wantStatus {
				t.Errorf("status = %v, want %v", res.Status, tc.wantStatus)
			}
			if tc.wantStatus == domain.LoadOK && res.Document.Value == nil {
				t.Error("document not passed through")
			}
		})
	}
}

func TestFetchPassesContext(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "req-1")

	repo := mocks.NewMockListingRepository(ctrl)
	repo.EXPECT().Load(ctx).Return(domain.Document{Value: map[string]interface{}{}}, nil)

	if _, err := NewListingService(repo, nil).Fetch(ctx); err != nil {
		t.Fatal(err)
	}
}
