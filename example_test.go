package unicodec_test

import (
	"fmt"

	"github.com/42atomys/go-unicodec"
)

func ExampleDecodeUTF8() {
	buf := []byte("\xE2\x82\xAC!")
	for pos := 0; pos < len(buf); {
		c, read, _, res := unicodec.DecodeUTF8(buf, &pos)
		fmt.Printf("U+%04X %d %s\n", c, read, res)
	}
	// Output:
	// U+20AC 3 success
	// U+0021 1 success
}

func ExampleDecodeEscape() {
	buf := []byte(`\uD83D\uDE00`)
	pos := 0
	hi, flags, _ := unicodec.DecodeEscape(buf, &pos)
	if flags.High && unicodec.HasEscape(buf, pos) {
		lo, _, _ := unicodec.DecodeEscape(buf, &pos)
		fmt.Printf("U+%X %d\n", unicodec.CombineSurrogatesUnchecked(hi, lo), pos)
	}
	// Output:
	// U+1F600 12
}

func ExampleTranscoder_EscapeString() {
	t := unicodec.NewWithDefaults()
	fmt.Println(t.EscapeString("na\xC3\xAFve \xE2\x98\x95"))
	// Output:
	// na\u00EFve \u2615
}

func ExampleTranscoder_Validate() {
	t := unicodec.NewWithDefaults()
	fmt.Println(t.Validate([]byte("ok")))
	fmt.Println(t.Validate([]byte("ok\xC0\xAF")))
	// Output:
	// <nil>
	// unicodec: validate at offset 2: bad_encoding
}
