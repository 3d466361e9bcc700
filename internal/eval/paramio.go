//
// beluga - a Reversi (Othello) playing engine
//
// MIT License
//
// Copyright (c) 2020-2026 the beluga authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.
//

package eval

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// EvaluationParamFileName is the default parameter file path.
const EvaluationParamFileName = "eval.bin"

// signature is the 16-byte file header: "beluga" followed by ten zero bytes.
var signature = [16]byte{'b', 'e', 'l', 'u', 'g', 'a'}

// SaveParam writes e to fileName as the 16-byte signature followed by a raw
// little-endian dump of every table in declared order.
func (e *Evaluator) SaveParam(fileName string) error {
	f, err := os.Create(fileName)
	if err != nil {
		return fmt.Errorf("failed to open evaluation parameter file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(signature[:]); err != nil {
		return fmt.Errorf("failed to open evaluation parameter file: %w", err)
	}
	if err := binary.Write(f, binary.LittleEndian, &e.FeatureParameters); err != nil {
		return fmt.Errorf("failed to open evaluation parameter file: %w", err)
	}
	return nil
}

// LoadParam validates the signature and reads fileName's tables into e.
func (e *Evaluator) LoadParam(fileName string) error {
	f, err := os.Open(fileName)
	if err != nil {
		return fmt.Errorf("failed to open evaluation parameter file: %w", err)
	}
	defer f.Close()

	var got [16]byte
	if _, err := f.Read(got[:]); err != nil {
		return fmt.Errorf("failed to load evaluation parameter file: %w", err)
	}
	if !bytes.Equal(got[:], signature[:]) {
		return fmt.Errorf("invalid signature in evaluation parameter file")
	}

	if err := binary.Read(f, binary.LittleEndian, &e.FeatureParameters); err != nil {
		return fmt.Errorf("failed to load evaluation parameter file: %w", err)
	}
	return nil
}
