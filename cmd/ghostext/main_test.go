package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/unkn0wn-root/ghostext"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(args, strings.NewReader(stdin), &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRunEncodeDecode(t *testing.T) {
	out, stderr, code := runCLI(t, "Hi!")
	if code != 0 || stderr != "" {
		t.Fatalf("encode: code=%d stderr=%q", code, stderr)
	}
	if out != ghostext.Encode([]byte("Hi!")) {
		t.Fatalf("encode output differs from library")
	}

	got, stderr, code := runCLI(t, "visible "+out+" text", "-d")
	if code != 0 || got != "Hi!" {
		t.Fatalf("decode = %q code=%d stderr=%q", got, code, stderr)
	}
}

func TestRunDecodeTruncated(t *testing.T) {
	rs := ghostext.StdEncoding.EncodeRunes([]byte("ab"))
	out, stderr, code := runCLI(t, string(rs[:3]), "-decode")
	if code != 1 {
		t.Fatalf("code = %d", code)
	}
	if out != "" {
		t.Fatalf("stdout not empty: %q", out)
	}
	if !strings.Contains(stderr, "truncated") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRunSupplementAlphabet(t *testing.T) {
	out, _, code := runCLI(t, "vss", "-alphabet", "vss")
	if code != 0 || out != ghostext.SupplementEncoding.EncodeToString([]byte("vss")) {
		t.Fatalf("code=%d out=%+q", code, out)
	}
	// the std alphabet sees nothing in supplement output
	got, _, code := runCLI(t, out, "-d")
	if code != 0 || got != "" {
		t.Fatalf("cross decode = %q code=%d", got, code)
	}
}

func TestRunEnvelope(t *testing.T) {
	sealed, _, code := runCLI(t, "secret", "-envelope")
	if code != 0 {
		t.Fatalf("seal code = %d", code)
	}
	got, _, code := runCLI(t, "hello "+sealed+" world", "-d", "-envelope")
	if code != 0 || got != "secret" {
		t.Fatalf("open = %q code=%d", got, code)
	}
	if _, stderr, code := runCLI(t, "nothing", "-d", "-envelope"); code != 1 || stderr == "" {
		t.Fatalf("missing envelope: code=%d stderr=%q", code, stderr)
	}
}

func TestRunCover(t *testing.T) {
	out, _, code := runCLI(t, "p", "-cover", "looks fine", "-place", "prefix")
	if code != 0 {
		t.Fatalf("code = %d", code)
	}
	if !strings.HasSuffix(out, "looks fine") || out == "looks fine" {
		t.Fatalf("out = %+q", out)
	}
	got, _, _ := runCLI(t, out, "-d")
	if got != "p" {
		t.Fatalf("decode = %q", got)
	}
}

func TestRunMax(t *testing.T) {
	enc := ghostext.Encode([]byte("toolong"))
	out, stderr, code := runCLI(t, enc, "-d", "-max", "6")
	if code != 1 || out != "" || !strings.Contains(stderr, "too large") {
		t.Fatalf("code=%d out=%q stderr=%q", code, out, stderr)
	}
}

func TestRunDebugLogsToStderr(t *testing.T) {
	out, stderr, code := runCLI(t, "x"+ghostext.Encode([]byte("dbg")), "-d", "-debug")
	if code != 0 || out != "dbg" {
		t.Fatalf("out=%q code=%d", out, code)
	}
	if !strings.Contains(stderr, "ghostext.decode") || !strings.Contains(stderr, "carriers") {
		t.Fatalf("stderr = %q", stderr)
	}
}

func TestRunBadFlags(t *testing.T) {
	cases := [][]string{
		{"-nope"},
		{"-alphabet", "latin"},
		{"-place", "middle"},
		{"-d", "-cover", "x"},
		{"-envelope", "-cover", "x"},
		{"stray"},
	}
	for _, args := range cases {
		out, stderr, code := runCLI(t, "", args...)
		if code != 2 || out != "" || stderr == "" {
			t.Fatalf("%v: code=%d out=%q stderr=%q", args, code, out, stderr)
		}
	}
}

func TestRunHelp(t *testing.T) {
	_, stderr, code := runCLI(t, "", "-h")
	if code != 0 || !strings.Contains(stderr, "Usage: ghostext") {
		t.Fatalf("code=%d stderr=%q", code, stderr)
	}
}
