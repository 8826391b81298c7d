package ss

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strings"

	"sscrypt/internal/domain"
)

// Generous line buffer for ciphertext hex lines; one line holds at most
// bitlen(n)/4 digits.
const maxCiphertextLine = 1 << 20

// EncryptStream reads r to exhaustion, encrypts it in fixed-size blocks
// under the public modulus n, and writes one lowercase-hex ciphertext per
// line to w.
//
// The block size is derived from sqrt(n): decryption operates mod pq and
// sqrt(n) = p·sqrt(q) < pq, so every block value is guaranteed to survive
// the round trip. Each block is the 0xFF sentinel followed by up to
// blockSize−1 payload bytes; a short final read simply yields a smaller
// block value.
func EncryptStream(r io.Reader, w io.Writer, n *big.Int) error {
	blockSize := BlockSizeFor(new(big.Int).Sqrt(n))
	if blockSize < 2 {
		return fmt.Errorf("%w: block size %d", domain.ErrModulusTooSmall, blockSize)
	}

	bw := bufio.NewWriter(w)
	buf := make([]byte, blockSize)

	for {
		buf[0] = Sentinel
		read, err := io.ReadFull(r, buf[1:])
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			return err
		}
		if read == 0 {
			break
		}

		m := new(big.Int).SetBytes(buf[:1+read])
		c, err := EncryptBlock(m, n)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(bw, "%x\n", c); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecryptStream reads ciphertext hex lines from r until exhaustion, decrypts
// each under (d, pq), strips the sentinel byte, and writes the payload bytes
// to w in order. The stream carries exactly one hexadecimal integer per
// line; a blank or non-hex line is domain.ErrCiphertextFormat.
//
// A decrypted block whose leading byte is not the sentinel indicates a wrong
// key or corrupted ciphertext and aborts with domain.ErrBadBlock.
func DecryptStream(r io.Reader, w io.Writer, d, pq *big.Int) error {
	bw := bufio.NewWriter(w)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxCiphertextLine)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			return fmt.Errorf("%w: blank line %d", domain.ErrCiphertextFormat, line)
		}
		c, ok := new(big.Int).SetString(text, 16)
		if !ok {
			return fmt.Errorf("%w: line %d is not a hexadecimal integer", domain.ErrCiphertextFormat, line)
		}

		m := DecryptBlock(c, d, pq)
		block := m.Bytes()
		if len(block) == 0 || block[0] != Sentinel {
			return fmt.Errorf("%w: line %d", domain.ErrBadBlock, line)
		}
		if _, err := bw.Write(block[1:]); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}
	return bw.Flush()
}
