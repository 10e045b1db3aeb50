// Command hashpw prints the argon2id hash expected in admin.password_hash.
//
//	echo -n 'secret' | hashpw
//	PRC_ADMIN_PASSWORD_HASH="$(hashpw < pw.txt)"
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"payment-reconciler/internal/service"
	"payment-reconciler/pkg/logger"
)

func main() {
	log := logger.New("info", true)

	if len(os.Args) > 1 {
		fmt.Fprintln(os.Stderr, "usage: hashpw < password")
		os.Exit(2)
	}

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil && line == "" {
		log.Fatal().Err(err).Msg("failed to read password from stdin")
	}
	password := strings.TrimRight(line, "\r\n")
	if password == "" {
		log.Fatal().Msg("empty password")
	}

	hash, err := service.NewArgon2HashService(service.DefaultArgon2Params).Hash(password)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to hash password")
	}
	fmt.Println(hash)
}
