package valueobject

import (
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/sha3"

	"github.com/ignatzorin/web3-freelance/internal/pkg/apperror"
)

// WalletAddress - EVM адрес кошелька, первичный ключ учётной записи.
type WalletAddress string

// NewWalletAddress проверяет формат адреса и приводит его к нижнему регистру.
// Адрес в смешанном регистре обязан нести корректную контрольную сумму EIP-55.
func NewWalletAddress(raw string) (WalletAddress, error) {
	addr := strings.TrimSpace(raw)
	if addr == "" {
		return "", apperror.Validation("Wallet address is required")
	}
	if len(addr) != 42 || !strings.HasPrefix(addr, "0x") {
		return "", apperror.Validation("Wallet address must be 0x followed by 40 hex characters")
	}

	body := addr[2:]
	if _, err := hex.DecodeString(body); err != nil {
		return "", apperror.Validation("Wallet address must be 0x followed by 40 hex characters")
	}

	if body != strings.ToLower(body) && body != strings.ToUpper(body) {
		if addr != ChecksumAddress(body) {
			return "", apperror.Validation("Wallet address has an invalid checksum")
		}
	}

	return WalletAddress("0x" + strings.ToLower(body)), nil
}

// ChecksumAddress возвращает адрес в регистре EIP-55.
func ChecksumAddress(hexBody string) string {
	lower := strings.ToLower(strings.TrimPrefix(hexBody, "0x"))

	hasher := sha3.NewLegacyKeccak256()
	hasher.Write([]byte(lower))
	hash := hex.EncodeToString(hasher.Sum(nil))

	out := make([]byte, len(lower))
	for i := 0; i < len(lower); i++ {
		c := lower[i]
		if c >= 'a' && c <= 'f' && hash[i] >= '8' {
			c -= 'a' - 'A'
		}
		out[i] = c
	}
	return "0x" + string(out)
}

func (w WalletAddress) String() string {
	return string(w)
}
