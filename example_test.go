package md5_test

import (
	"fmt"

	md5 "github.com/7Duser/drbMD5"
)

func ExampleComputeHash() {
	fmt.Printf("%x\n", md5.ComputeHash([]byte("\x01\x02\x03\x04\x05\x06")))
	// Output: 6ac1e56bc78f031059be7be854522c4c
}

func ExampleHashToHex() {
	s, err := md5.HashToHex("Hello, World!")
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 65a8e27d8879283831b664bd8b7f0ad4
}
