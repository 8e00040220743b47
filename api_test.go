package mayo

import "testing"

func TestPublicAPIRoundTrip(t *testing.T) {
	for _, variant := range []string{"MAYO1", "mayo2"} {
		csk, cpk, err := Keypair(variant)
		if err != nil {
			t.Fatalf("%s: keypair: %v", variant, err)
		}
		msg := []byte("hello mayo")
		sig, err := Sign(csk, msg, variant)
		if err != nil {
			t.Fatalf("%s: sign: %v", variant, err)
		}
		signedMessage := append(append([]byte(nil), sig...), msg...)
		got, ok, err := Open(cpk, signedMessage, variant)
		if err != nil {
			t.Fatalf("%s: open: %v", variant, err)
		}
		if !ok {
			t.Fatalf("%s: open rejected a genuine signature", variant)
		}
		if string(got) != string(msg) {
			t.Fatalf("%s: got %q, want %q", variant, got, msg)
		}
	}
}

func TestUnknownVariant(t *testing.T) {
	if _, _, err := Keypair("mayo3"); err == nil {
		t.Fatal("expected UnknownVariant error")
	}
}

func TestOpenRejectsShortSignedMessage(t *testing.T) {
	_, cpk, err := Keypair("MAYO1")
	if err != nil {
		t.Fatal(err)
	}
	_, ok, err := Open(cpk, []byte("too short"), "MAYO1")
	if err == nil {
		t.Fatal("expected an error for an under-length signed message")
	}
	if ok {
		t.Fatal("ok should be false alongside the error")
	}
}
