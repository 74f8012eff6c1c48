package eof

import "encoding/binary"

// buildEOF assembles a well-formed EOF1 wire container from its logical
// parts, grounded on the teacher's buildEOF/buildValidEOFCode test helpers.
func buildEOF(types []TypeHeader, codes [][]byte, containers [][]byte, data []byte) []byte {
	var b []byte
	b = append(b, magic0, magic1, EOFVersion)

	typeSize := uint16(4 * len(types))
	b = append(b, typeSectionID)
	b = appendU16(b, typeSize)

	b = append(b, codeSectionID)
	b = appendU16(b, uint16(len(codes)))
	for _, c := range codes {
		b = appendU16(b, uint16(len(c)))
	}

	if len(containers) > 0 {
		b = append(b, containerID)
		b = appendU16(b, uint16(len(containers)))
		for _, c := range containers {
			b = appendU16(b, uint16(len(c)))
		}
	}

	b = append(b, dataSectionID)
	b = appendU16(b, uint16(len(data)))

	b = append(b, terminatorID)

	for _, t := range types {
		b = append(b, t.Inputs, t.Outputs)
		b = appendU16(b, t.MaxStack)
	}
	for _, c := range codes {
		b = append(b, c...)
	}
	b = append(b, data...)
	for _, c := range containers {
		b = append(b, c...)
	}

	return b
}

func appendU16(b []byte, v uint16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], v)
	return append(b, tmp[:]...)
}

// buildValidEOFCode builds a single-function container with one type record.
func buildValidEOFCode(ts TypeHeader, code []byte, data []byte) []byte {
	return buildEOF([]TypeHeader{ts}, [][]byte{code}, nil, data)
}

func rjumpOffset(off int16) []byte {
	var tmp [2]byte
	binary.BigEndian.PutUint16(tmp[:], uint16(off))
	return tmp[:]
}
