package domain

import (
	"time"

	"github.com/google/uuid"
)

// PublicInputs are the public half of a wage claim proof. The settlement
// engine never sees the underlying wage statement, only these values and
// the proof binding them together.
type PublicInputs struct {
	NullifierToken     string `json:"nullifier_token"`     // hex-encoded field element
	Amount             int64  `json:"amount"`              // base units
	EmployerCommitment string `json:"employer_commitment"` // poseidon(pubkey), hex-encoded
}

// WageClaim is the transient per-request claim. It is never persisted as-is;
// it either becomes a committed NullifierRecord or is rejected.
type WageClaim struct {
	Proof        []byte       `json:"proof"`
	PublicInputs PublicInputs `json:"public_inputs"`
}

// NullifierRecord is the permanent, append-only proof that a claim was paid.
// At most one record exists per token; this set is the sole defense against
// double payment and is never mutated or deleted.
type NullifierRecord struct {
	Token        string    `json:"token"`
	ClaimID      uuid.UUID `json:"claim_id"`
	PayoutAmount int64     `json:"payout_amount"`
	CommittedAt  time.Time `json:"committed_at"`
}

// ClaimReceipt is returned to the caller after a successful settlement.
type ClaimReceipt struct {
	ClaimID            uuid.UUID `json:"claim_id"`
	NullifierToken     string    `json:"nullifier_token"`
	EmployerID         uuid.UUID `json:"employer_id"`
	EmployerCommitment string    `json:"employer_commitment"`
	GrossAmount        int64     `json:"gross_amount"`
	Fee                int64     `json:"fee"`
	NetAmount          int64     `json:"net_amount"`
	SettledAt          time.Time `json:"settled_at"`
}
