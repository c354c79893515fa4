package zk

import (
	"fmt"

	"zkwage-settlement/internal/core/ports"

	"github.com/iden3/go-iden3-crypto/poseidon"
)

// PoseidonCommitment implements ports.CommitmentScheme. The commitment is
// the poseidon hash of the employer public key, hex-encoded with a 0x
// prefix, matching how the wage circuit binds the key inside proofs.
type PoseidonCommitment struct{}

// NewPoseidonCommitment creates the commitment scheme.
func NewPoseidonCommitment() *PoseidonCommitment {
	return &PoseidonCommitment{}
}

// Commit derives the commitment for the given public key bytes.
func (PoseidonCommitment) Commit(pubKey []byte) (string, error) {
	if len(pubKey) == 0 {
		return "", fmt.Errorf("empty public key")
	}
	h, err := poseidon.HashBytes(pubKey)
	if err != nil {
		return "", fmt.Errorf("poseidon hash: %w", err)
	}
	return "0x" + h.Text(16), nil
}

var _ ports.CommitmentScheme = (*PoseidonCommitment)(nil)
