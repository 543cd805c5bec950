package valueobject

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

func TestJobStatusTransitions(t *testing.T) {
	allowed := [][2]JobStatus{
		{JobStatusNew, JobStatusPushed},
		{JobStatusPushed, JobStatusAccepted},
		{JobStatusAccepted, JobStatusCompleted},
		{JobStatusAccepted, JobStatusDisputed},
		{JobStatusDisputed, JobStatusResolved},
	}
	for _, pair := range allowed {
		assert.True(t, pair[0].CanTransitionTo(pair[1]), "%s -> %s", pair[0], pair[1])
	}

	denied := [][2]JobStatus{
		{JobStatusNew, JobStatusAccepted},
		{JobStatusPushed, JobStatusCompleted},
		{JobStatusCompleted, JobStatusDisputed},
		{JobStatusResolved, JobStatusNew},
		{JobStatusNew, JobStatusNew},
	}
	for _, pair := range denied {
		assert.False(t, pair[0].CanTransitionTo(pair[1]), "%s -> %s", pair[0], pair[1])
	}
}

func TestNewJobStatus(t *testing.T) {
	s, err := NewJobStatus("ACCEPTED")
	require.NoError(t, err)
	assert.Equal(t, JobStatusAccepted, s)

	_, err = NewJobStatus("accepted")
	assert.True(t, apperror.IsValidation(err))
}

func TestNewAmount(t *testing.T) {
	a, err := ParseAmount("1500")
	require.NoError(t, err)
	assert.Equal(t, "1500", a.String())

	_, err = ParseAmount("-1")
	assert.True(t, apperror.IsValidation(err))

	_, err = ParseAmount("10.5")
	assert.True(t, apperror.IsValidation(err))

	_, err = ParseAmount("abc")
	assert.True(t, apperror.IsValidation(err))

	_, err = ParseAmount(strings.Repeat("9", MaxAmountDigits+1))
	assert.True(t, apperror.IsValidation(err))

	a, err = NewAmount(decimal.RequireFromString("100.000"))
	require.NoError(t, err)
	assert.Equal(t, "100", a.String())
}

func TestAmountAdd(t *testing.T) {
	a, _ := ParseAmount("100")
	b, _ := ParseAmount("250")
	assert.Equal(t, "350", a.Add(b).String())
	assert.Equal(t, "0", ZeroAmount().String())
}

func TestAmountJSON(t *testing.T) {
	big := strings.Repeat("9", MaxAmountDigits)
	a, err := ParseAmount(big)
	require.NoError(t, err)

	raw, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{a})
	require.NoError(t, err)
	assert.Equal(t, `{"amount":`+big+`}`, string(raw))

	for _, in := range []string{`1500`, `"1500"`} {
		var got Amount
		require.NoError(t, json.Unmarshal([]byte(in), &got), in)
		assert.Equal(t, "1500", got.String())
	}

	var bad Amount
	assert.Error(t, json.Unmarshal([]byte(`"12.5"`), &bad))
}

func TestNewWalletAddress(t *testing.T) {
	valid := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xd1220a0cf47c7b9be7a2e6ba89f429762e7b9adb",
		"  0x52908400098527886E0F7030069857D2E4169EE7 ",
	}
	for _, raw := range valid {
		addr, err := NewWalletAddress(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, strings.ToLower(strings.TrimSpace(raw)), addr.String())
	}

	invalid := []string{
		"",
		"0x123",
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed00",
		"0xZZAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0x5AAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	}
	for _, raw := range invalid {
		_, err := NewWalletAddress(raw)
		assert.True(t, apperror.IsValidation(err), raw)
	}
}

func TestChecksumAddress(t *testing.T) {
	assert.Equal(t,
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		ChecksumAddress("0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"),
	)
}

func TestOptional(t *testing.T) {
	target := "old"

	None[string]().ApplyTo(&target)
	assert.Equal(t, "old", target)

	Some("new").ApplyTo(&target)
	assert.Equal(t, "new", target)

	var nilPtr *string
	assert.False(t, FromPtr(nilPtr).IsSet())

	v := "x"
	got, ok := FromPtr(&v).Get()
	assert.True(t, ok)
	assert.Equal(t, "x", got)
}
