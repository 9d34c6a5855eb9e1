package iso8211

import (
	"strconv"
)

// leaderSize is the fixed width of every ISO/IEC 8211 record leader.
const leaderSize = 24

// fieldTerminator and subfieldTerminator are the two control bytes that
// close out variable-width data in a record. A subfield whose declared
// format is fixed-width binary must never be scanned for these bytes: the
// value 0x1e (or 0x1f) is a perfectly legal byte inside a binary payload.
const (
	subfieldTerminator byte = 0x1f
	fieldTerminator    byte = 0x1e
)

// leaderID distinguishes a Data Descriptive Record ('L') from a Data Record
// ('D'). DDRs carry field definitions; data records carry field values.
type leaderID byte

const (
	leaderDDR  leaderID = 'L'
	leaderData leaderID = 'D'
)

// leader is the parsed 24-byte record leader common to DDRs and data
// records (ISO/IEC 8211 §6.1).
type leader struct {
	recordLength     int
	interchangeLevel byte
	id               leaderID
	fieldControl     int
	baseAddress      int
	sizeOfLength     int
	sizeOfPosition   int
	sizeOfTag        int
}

func parseLeader(buf []byte, offset int64) (leader, error) {
	if len(buf) < leaderSize {
		return leader{}, &TruncatedRecordError{Offset: offset, Expected: leaderSize, Got: len(buf)}
	}

	recLen, err := atoiField(buf[0:5])
	if err != nil {
		return leader{}, &InvalidLeaderError{Offset: offset, Reason: "bad record length digits: " + err.Error()}
	}

	id := leaderID(buf[6])
	if id != leaderDDR && id != leaderData {
		return leader{}, &InvalidLeaderError{Offset: offset, Reason: "unexpected leader identifier " + strconv.QuoteRune(rune(id))}
	}

	fieldControl, err := atoiField(buf[10:12])
	if err != nil {
		return leader{}, &InvalidLeaderError{Offset: offset, Reason: "bad field control length digits: " + err.Error()}
	}

	baseAddress, err := atoiField(buf[12:17])
	if err != nil {
		return leader{}, &InvalidLeaderError{Offset: offset, Reason: "bad base address digits: " + err.Error()}
	}

	sizeLen := int(buf[20] - '0')
	sizePos := int(buf[21] - '0')
	sizeTag := int(buf[23] - '0')
	if sizeLen <= 0 || sizePos <= 0 || sizeTag <= 0 {
		return leader{}, &InvalidLeaderError{Offset: offset, Reason: "bad entry map size digits"}
	}

	return leader{
		recordLength:     recLen,
		interchangeLevel: buf[5],
		id:               id,
		fieldControl:     fieldControl,
		baseAddress:      baseAddress,
		sizeOfLength:     sizeLen,
		sizeOfPosition:   sizePos,
		sizeOfTag:        sizeTag,
	}, nil
}

func atoiField(b []byte) (int, error) {
	n := 0
	for _, c := range b {
		if c == ' ' {
			continue
		}
		if c < '0' || c > '9' {
			return 0, &InvalidLeaderError{Reason: "non-digit byte " + strconv.Itoa(int(c))}
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

// dirEntry is one directory entry: a field tag plus its length and position
// relative to the record's base address.
type dirEntry struct {
	tag      string
	length   int
	position int
}

// parseDirectory walks the directory that follows the leader, reading
// fixed-width tag/length/position triples until the field terminator.
func parseDirectory(buf []byte, l leader, offset int64) ([]dirEntry, error) {
	entryWidth := l.sizeOfTag + l.sizeOfLength + l.sizeOfPosition
	var entries []dirEntry

	i := 0
	for i+entryWidth <= len(buf) {
		if buf[i] == fieldTerminator {
			return entries, nil
		}
		tag := string(buf[i : i+l.sizeOfTag])
		lenStart := i + l.sizeOfTag
		posStart := lenStart + l.sizeOfLength
		length, err := atoiField(buf[lenStart : lenStart+l.sizeOfLength])
		if err != nil {
			return nil, &InvalidLeaderError{Offset: offset, Reason: "bad directory length for " + tag}
		}
		position, err := atoiField(buf[posStart : posStart+l.sizeOfPosition])
		if err != nil {
			return nil, &InvalidLeaderError{Offset: offset, Reason: "bad directory position for " + tag}
		}
		entries = append(entries, dirEntry{tag: tag, length: length, position: position})
		i += entryWidth
	}

	return entries, nil
}
