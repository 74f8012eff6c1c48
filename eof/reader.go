package eof

// ReadValidHeader re-parses the header of a container already known to have
// validated successfully (spec.md §4.8). It reuses parseHeaders but ignores
// its error result, and skips validateTypes, the body-size check and all
// code checks. Behaviour on invalid input is undefined; callers must
// guarantee prior successful validation.
func ReadValidHeader(container []byte) ValidHeader {
	sh, headerSize, _ := parseHeaders(container)

	var types []TypeHeader
	if sh.typeSize == 0 {
		types = []TypeHeader{{}}
	} else {
		for off := headerSize; off < headerSize+int(sh.typeSize); off += 4 {
			maxStack := uint16(container[off+2])<<8 | uint16(container[off+3])
			types = append(types, TypeHeader{
				Inputs:   container[off],
				Outputs:  container[off+1],
				MaxStack: maxStack,
			})
		}
	}

	return assembleHeader(sh, headerSize, types)
}
