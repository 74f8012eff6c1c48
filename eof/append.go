package eof

// AppendData implements spec.md §4.9: append aux to the data section of a
// container already known to be valid, patching the data-size header field
// of the result. Go byte slices cannot grow in place, so this returns the new
// container bytes rather than mutating through a pointer; ok is false (with
// the original container returned unchanged) if the new data section would
// no longer fit in 16 bits.
func AppendData(container []byte, aux []byte) ([]byte, bool) {
	header := ReadValidHeader(container)
	newDataSize := int(header.DataSize) + len(aux)
	if newDataSize > 0xFFFF {
		return container, false
	}

	insertPos := len(container)
	if len(header.ContainerOffsets) > 0 {
		insertPos = header.ContainerBegin(0)
	}

	out := make([]byte, 0, len(container)+len(aux))
	out = append(out, container[:insertPos]...)
	out = append(out, aux...)
	out = append(out, container[insertPos:]...)

	pos := dataSizeFieldOffset(container)
	out[pos] = byte(newDataSize >> 8)
	out[pos+1] = byte(newDataSize)

	return out, true
}

// dataSizeFieldOffset locates the two bytes encoding the data section's
// declared size within the header, derived from the actual section layout
// (spec.md §6.2) rather than assuming no CONTAINER header is present.
func dataSizeFieldOffset(container []byte) int {
	pos := 3 // MAGIC + version
	for container[pos] != dataSectionID {
		switch container[pos] {
		case codeSectionID, containerID:
			count := int(container[pos+1])<<8 | int(container[pos+2])
			pos += 3 + 2*count // id + count + sizes
		default:
			pos += 3 // TYPE: id + size
		}
	}
	pos++ // DATA id byte
	return pos
}
