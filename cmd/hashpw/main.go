// cmd/hashpw/main.go
//
// Reads a password from stdin and prints its bcrypt hash for
// admin.password_hash.
//
//	printf '%s' 'secret' | bkt-hashpw
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/niklasalamak0/v0-pt-bakti-karya-teknik/internal/session"
)

func main() {
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatalf("hashpw: read stdin: %v", err)
	}
	pw := strings.TrimRight(line, "\r\n")
	if pw == "" {
		log.Fatal("hashpw: empty password")
	}
	hash, err := session.HashPassword(pw)
	if err != nil {
		log.Fatalf("hashpw: %v", err)
	}
	fmt.Println(hash)
}
