// Copyright 2026 Jeremy Hahn
// SPDX-License-Identifier: MIT

package pinhash

import "fmt"

// KeyType identifies a public key algorithm family.
type KeyType string

const (
	// KeyTypeRSA is an RSA public key of any modulus size. Its external
	// representation is the PKCS#1 SEQUENCE{modulus, publicExponent}.
	KeyTypeRSA KeyType = "RSA"

	// KeyTypeEC is an elliptic-curve public key on one of the NIST prime
	// curves. Its external representation is the uncompressed point
	// 0x04 || X || Y.
	KeyTypeEC KeyType = "EC"
)

// DER AlgorithmIdentifier fragments keyed by (key type, key size). The bytes
// are fixed so that SPKI digests are reproducible across platforms.
var (
	algIDRSA = []byte{
		0x30, 0x0d, 0x06, 0x09, 0x2a, 0x86, 0x48, 0x86,
		0xf7, 0x0d, 0x01, 0x01, 0x01, 0x05, 0x00,
	}
	algIDECP256 = []byte{
		0x30, 0x13, 0x06, 0x07, 0x2a, 0x86, 0x48, 0xce,
		0x3d, 0x02, 0x01, 0x06, 0x08, 0x2a, 0x86, 0x48,
		0xce, 0x3d, 0x03, 0x01, 0x07,
	}
	algIDECP384 = []byte{
		0x30, 0x10, 0x06, 0x07, 0x2a, 0x86, 0x48, 0xce,
		0x3d, 0x02, 0x01, 0x06, 0x05, 0x2b, 0x81, 0x04,
		0x00, 0x22,
	}
	algIDECP521 = []byte{
		0x30, 0x10, 0x06, 0x07, 0x2a, 0x86, 0x48, 0xce,
		0x3d, 0x02, 0x01, 0x06, 0x05, 0x2b, 0x81, 0x04,
		0x00, 0x23,
	}
)

// algorithmIdentifier returns the DER AlgorithmIdentifier for the given key
// algorithm and size in bits. RSA accepts any size; EC keys must be on
// P-256, P-384 or P-521.
func algorithmIdentifier(keyType KeyType, sizeBits int) ([]byte, error) {
	switch keyType {
	case KeyTypeRSA:
		return algIDRSA, nil
	case KeyTypeEC:
		switch sizeBits {
		case 256:
			return algIDECP256, nil
		case 384:
			return algIDECP384, nil
		case 521:
			return algIDECP521, nil
		}
		return nil, fmt.Errorf("%w: EC %d bits", ErrUnsupportedKeyType, sizeBits)
	}
	return nil, fmt.Errorf("%w: %q %d bits", ErrUnsupportedKeyType, keyType, sizeBits)
}
