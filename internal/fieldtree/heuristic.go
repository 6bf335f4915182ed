package fieldtree

import (
	"github.com/simonhull/boxtree/internal/binary"
	"github.com/simonhull/boxtree/internal/registry"
	"github.com/simonhull/boxtree/internal/types"
)

// Registered heuristic names.
const (
	// HeuristicPrintable accepts any plausible length followed by a printable tag.
	HeuristicPrintable = "printable"
	// HeuristicBMFF additionally requires the tag to be a known ISO-BMFF box type.
	HeuristicBMFF = "bmff"
)

// DefaultHeuristic is used when no heuristic is configured.
const DefaultHeuristic = HeuristicPrintable

// Plausible reports whether the head of v looks like the start of a nested
// record: its declared length fits in v and its tag is printable ASCII.
//
// This is a heuristic. Opaque payload that happens to begin with a small
// length and four printable bytes is accepted as a record.
func Plausible(v binary.View) bool {
	if v.Size() < types.HeaderSize {
		return false
	}
	if uint64(binary.Uint32At(v, 0)) > uint64(v.Size()) {
		return false
	}
	return binary.TagAt(v, 4).Printable()
}

// KnownBox is Plausible restricted to the box types listed in bmffTags.
func KnownBox(v binary.View) bool {
	if !Plausible(v) {
		return false
	}
	_, ok := bmffTags[binary.TagAt(v, 4)]
	return ok
}

// bmffTags lists box types from ISO/IEC 14496-12 and the DASH/CMAF profiles.
var bmffTags = tagSet(
	// File and segment level
	"ftyp", "styp", "moov", "moof", "mdat", "free", "skip", "sidx", "ssix", "emsg",
	"prft", "mfra", "tfra", "mfro", "meta", "uuid", "pdin", "meco",
	// Movie
	"mvhd", "trak", "tkhd", "tref", "trgr", "edts", "elst", "mdia", "mdhd", "hdlr",
	"elng", "minf", "vmhd", "smhd", "hmhd", "sthd", "nmhd", "dinf", "dref", "url ",
	"urn ", "udta", "mvex", "mehd", "trex", "leva", "iods", "ilst", "keys",
	// Sample tables
	"stbl", "stsd", "stts", "ctts", "cslg", "stsc", "stsz", "stz2", "stco", "co64",
	"stss", "stsh", "padb", "stdp", "sdtp", "sbgp", "sgpd", "subs", "saiz", "saio",
	// Fragments
	"mfhd", "traf", "tfhd", "tfdt", "trun",
	// Sample entries and codec configuration
	"avc1", "avc3", "avcC", "hev1", "hvc1", "hvcC", "av01", "av1C", "vp09", "vpcC",
	"mp4a", "esds", "Opus", "dOps", "fLaC", "dfLa", "ac-3", "dac3", "ec-3", "dec3",
	"btrt", "pasp", "colr", "clap",
	// Protection
	"sinf", "frma", "schm", "schi", "tenc", "pssh", "senc", "encv", "enca",
)

func tagSet(names ...string) map[types.Tag]struct{} {
	set := make(map[types.Tag]struct{}, len(names))
	for _, n := range names {
		set[types.TagOf(n)] = struct{}{}
	}
	return set
}

func init() {
	registry.Register(HeuristicPrintable, Plausible)
	registry.Register(HeuristicBMFF, KnownBox)
}
