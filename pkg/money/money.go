// Package money converte entre strings decimais digitadas pelo usuário e
// valores inteiros em centavos, como a API espera.
package money

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// ErrInvalidAmount é retornado para valores vazios, negativos ou mal formados.
var ErrInvalidAmount = errors.New("invalid amount")

// ParseToCentavos converts a user-entered decimal string to centavos.
//
// Aceita vírgula ou ponto como separador decimal ("15,20" e "15.20" valem
// 1520) e arredonda a terceira casa decimal para cima a partir de 5.
// Valores negativos ou zero são rejeitados; o sinal vem do tipo da
// transação, nunca do valor.
func ParseToCentavos(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")

	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart + fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}

	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafe = (1<<63 - 1) / 100
	if iv > maxSafe {
		return 0, ErrInvalidAmount
	}

	var frac int64
	if len(fracPart) > 0 {
		frac = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			frac += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				frac++
			}
		}
	}

	centavos := iv*100 + frac
	if centavos <= 0 {
		return 0, ErrInvalidAmount
	}
	return centavos, nil
}

// FormatCentavos renders centavos in the pt-BR style used across the UI:
// thousands separated by dots, decimals by a comma ("1.520,00").
func FormatCentavos(centavos int64) string {
	negative := centavos < 0
	if negative {
		centavos = -centavos
	}

	intPart := centavos / 100
	frac := centavos % 100

	digits := strconv.FormatInt(intPart, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("%s,%02d", b.String(), frac)
	if negative {
		return "-" + out
	}
	return out
}

// FormatBRL prefixa o valor formatado com o símbolo da moeda.
func FormatBRL(centavos int64) string {
	return "R$ " + FormatCentavos(centavos)
}
