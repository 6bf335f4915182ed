package fieldtree

import (
	"bytes"
	"encoding/binary"
)

// record builds a record with the given tag whose body is the concatenation of parts.
func record(tag string, parts ...[]byte) []byte {
	buf := &bytes.Buffer{}

	body := bytes.Join(parts, nil)
	binary.Write(buf, binary.BigEndian, uint32(8+len(body)))
	buf.WriteString(tag)
	buf.Write(body)

	return buf.Bytes()
}

// concat joins records into one input.
func concat(parts ...[]byte) []byte {
	return bytes.Join(parts, nil)
}

// segment returns a small fragmented-MP4 style input:
//
//	styp (4 payload bytes)
//	moof
//	  mfhd (4 payload bytes)
//	  traf
//	    tfhd (8 payload bytes)
//	mdat (payload 0x00..0x0f)
func segment() []byte {
	mdat := make([]byte, 16)
	for i := range mdat {
		mdat[i] = byte(i)
	}
	return concat(
		record("styp", []byte("msdh")),
		record("moof",
			record("mfhd", []byte{0, 0, 0, 1}),
			record("traf", record("tfhd", []byte{0, 0, 0, 0, 0, 0, 0, 1})),
		),
		record("mdat", mdat),
	)
}
