package mayo

import (
	"bytes"
	"testing"

	"mayo-signature/internal/params"
)

func roundTrip(t *testing.T, par params.Params, message []byte) {
	t.Helper()
	csk, cpk, err := CompactKeyGen(par, nil)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	sig, err := Sign(csk, message, par)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if len(sig) != par.SigBytes() {
		t.Fatalf("len(sig) = %d, want %d", len(sig), par.SigBytes())
	}
	ok, err := Verify(cpk, message, sig, par)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if !ok {
		t.Fatal("verify returned false for a genuine signature")
	}
}

func TestRoundTripMAYO1Empty(t *testing.T) {
	roundTrip(t, params.MAYO1, []byte(""))
}

func TestRoundTripMAYO2(t *testing.T) {
	msg := bytes.Repeat([]byte{0xAA}, 32)
	roundTrip(t, params.MAYO2, msg)
}

func TestTamperedSignatureFailsVerify(t *testing.T) {
	par := params.MAYO1
	msg := []byte("The quick brown fox")
	csk, cpk, err := CompactKeyGen(par, nil)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	sig, err := Sign(csk, msg, par)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	tampered := sig.Clone()
	tampered[0] ^= 0xFF
	ok, err := Verify(cpk, msg, tampered, par)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if ok {
		t.Fatal("verify accepted a tampered signature")
	}
}

func TestExpandSKAndPKRoundTripThroughSign(t *testing.T) {
	par := params.MAYO1
	csk, cpk, err := CompactKeyGen(par, nil)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	esk, err := ExpandSK(csk, par)
	if err != nil {
		t.Fatalf("expandsk: %v", err)
	}
	epk, err := ExpandPK(cpk, par)
	if err != nil {
		t.Fatalf("expandpk: %v", err)
	}
	msg := []byte("expanded key path")
	sig, err := SignExpanded(esk, msg, par)
	if err != nil {
		t.Fatalf("sign expanded: %v", err)
	}
	ok, err := VerifyExpanded(epk, msg, sig, par)
	if err != nil {
		t.Fatalf("verify expanded: %v", err)
	}
	if !ok {
		t.Fatal("expanded-key round trip failed verification")
	}
}

func TestSignRejectsWrongCompactKeyLength(t *testing.T) {
	par := params.MAYO1
	_, err := Sign(make(CompactSecretKey, par.SKSeedBytes+1), []byte("x"), par)
	if err == nil {
		t.Fatal("expected an error for a malformed compact secret key")
	}
}

func TestVerifyRejectsWrongSignatureLength(t *testing.T) {
	par := params.MAYO1
	_, cpk, err := CompactKeyGen(par, nil)
	if err != nil {
		t.Fatalf("keygen: %v", err)
	}
	_, err = Verify(cpk, []byte("x"), make(Signature, par.SigBytes()-1), par)
	if err == nil {
		t.Fatal("expected InvalidSignatureFormat")
	}
}
