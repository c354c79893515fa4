// Package zk holds the proof-system adapters: the groth16 wage-proof
// verifier and the poseidon employer commitment scheme.
package zk

import (
	"bytes"
	"context"
	"fmt"
	"math/big"
	"os"
	"strings"

	"zkwage-settlement/internal/core/domain"
	"zkwage-settlement/internal/core/ports"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/consensys/gnark/backend/witness"
)

// nbPublicInputs is the wage circuit's public input count: nullifier,
// amount, employer commitment, in that order.
const nbPublicInputs = 3

// Groth16Verifier implements ports.ProofVerifier against a BN254 groth16
// verifying key loaded at startup. Verification is pure CPU work; the
// context only bounds it, it cannot be threaded into gnark.
type Groth16Verifier struct {
	vk groth16.VerifyingKey
}

// NewGroth16Verifier loads the verifying key from keyPath.
func NewGroth16Verifier(keyPath string) (*Groth16Verifier, error) {
	f, err := os.Open(keyPath)
	if err != nil {
		return nil, fmt.Errorf("open verifying key: %w", err)
	}
	defer f.Close()

	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(f); err != nil {
		return nil, fmt.Errorf("read verifying key: %w", err)
	}
	return &Groth16Verifier{vk: vk}, nil
}

// NewGroth16VerifierFromKey wraps an already-deserialized verifying key.
// Used by verifier rotation, where the replacement key arrives over the
// admin API rather than from disk.
func NewGroth16VerifierFromKey(raw []byte) (*Groth16Verifier, error) {
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if _, err := vk.ReadFrom(bytes.NewReader(raw)); err != nil {
		return nil, fmt.Errorf("read verifying key: %w", err)
	}
	return &Groth16Verifier{vk: vk}, nil
}

// Verify checks proofBytes against the claim's public inputs. A proof that
// fails verification returns (false, nil); a proof or input that cannot be
// decoded returns an error.
func (v *Groth16Verifier) Verify(ctx context.Context, proofBytes []byte, inputs domain.PublicInputs) (bool, error) {
	proof := groth16.NewProof(ecc.BN254)
	if _, err := proof.ReadFrom(bytes.NewReader(proofBytes)); err != nil {
		return false, fmt.Errorf("decode proof: %w", err)
	}

	pubWitness, err := publicWitness(inputs)
	if err != nil {
		return false, err
	}

	// gnark has no context hooks, so the pairing check runs in its own
	// goroutine and the deadline is enforced from outside.
	done := make(chan error, 1)
	go func() {
		done <- groth16.Verify(proof, v.vk, pubWitness)
	}()

	select {
	case <-ctx.Done():
		return false, ctx.Err()
	case err := <-done:
		if err != nil {
			return false, nil
		}
		return true, nil
	}
}

// publicWitness builds the circuit's public witness in declaration order.
func publicWitness(inputs domain.PublicInputs) (witness.Witness, error) {
	nullifier, err := fieldElement(inputs.NullifierToken)
	if err != nil {
		return nil, fmt.Errorf("nullifier: %w", err)
	}
	commitment, err := fieldElement(inputs.EmployerCommitment)
	if err != nil {
		return nil, fmt.Errorf("employer commitment: %w", err)
	}

	w, err := witness.New(ecc.BN254.ScalarField())
	if err != nil {
		return nil, fmt.Errorf("new witness: %w", err)
	}

	values := make(chan any, nbPublicInputs)
	values <- nullifier
	values <- big.NewInt(inputs.Amount)
	values <- commitment
	close(values)

	if err := w.Fill(nbPublicInputs, 0, values); err != nil {
		return nil, fmt.Errorf("fill witness: %w", err)
	}
	return w, nil
}

// fieldElement parses a hex-encoded BN254 scalar.
func fieldElement(s string) (*big.Int, error) {
	trimmed := strings.TrimPrefix(s, "0x")
	if trimmed == "" {
		return nil, fmt.Errorf("empty field element")
	}
	n, ok := new(big.Int).SetString(trimmed, 16)
	if !ok {
		return nil, fmt.Errorf("not a hex field element: %q", s)
	}
	if n.Cmp(ecc.BN254.ScalarField()) >= 0 {
		return nil, fmt.Errorf("value exceeds the scalar field modulus")
	}
	return n, nil
}

var _ ports.ProofVerifier = (*Groth16Verifier)(nil)
