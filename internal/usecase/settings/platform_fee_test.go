package settings_test

import (
	"context"
	"testing"

	"github.com/ignatzorin/web3-freelance/internal/domain/entity"
	"github.com/ignatzorin/web3-freelance/internal/testutil/memrepo"
	"github.com/ignatzorin/web3-freelance/internal/usecase/settings"
)

func TestPlatformFee(t *testing.T) {
	cases := []struct {
		name   string
		stored *string
		want   float64
	}{
		{name: "absent", want: entity.DefaultPlatformFee},
		{name: "configured", stored: ptr("3.5"), want: 3.5},
		{name: "garbage", stored: ptr("abc"), want: entity.DefaultPlatformFee},
		{name: "negative", stored: ptr("-1"), want: entity.DefaultPlatformFee},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := memrepo.NewStore()
			if tc.stored != nil {
				store.SetSetting(entity.PlatformFeeKey, *tc.stored)
			}

			fee, err := settings.NewPlatformFeeUseCase(store.Settings()).Execute(context.Background())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if fee != tc.want {
				t.Errorf("expected %v, got %v", tc.want, fee)
			}
		})
	}
}

func ptr(s string) *string { return &s }
