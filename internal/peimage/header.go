package peimage

// Range is a half-open byte range, expressed as offsets relative to
// the image base (an RVA range), not absolute addresses.
type Range struct {
	Start uint32
	End   uint32
}

// Len reports the number of bytes in the range.
func (r Range) Len() uint32 { return r.End - r.Start }

// MemReader is the minimal remote-read capability peimage needs. A
// *process.Ref satisfies it; peimage depends only on this narrow
// interface to avoid an import cycle with the process package, which
// in turn depends on peimage to cache the header on Connect.
type MemReader interface {
	ReadBytes(addr uint32, n int) ([]byte, error)
}

// Header is the parsed DOS/PE header data this reader needs: the
// image base and size, the .text/.rdata RVA ranges, and the build
// timestamp used both for version-adaptive reads and the discovery
// engine's known-build fast path.
type Header struct {
	ImageBase   uint32
	SizeOfImage uint32
	Text        Range
	Rdata       Range
	Timestamp   uint32
}

// ReadHeader reads and validates the DOS/PE/optional headers of the
// image loaded at base in the target addressed by r.
func ReadHeader(r MemReader, base uint32) (*Header, error) {
	dosBuf, err := r.ReadBytes(base, sizeOfDosHeader)
	if err != nil {
		return nil, err
	}
	var dos DosHeader
	if err := structUnpack(dosBuf, 0, &dos); err != nil {
		return nil, err
	}
	if dos.Magic != ImageDOSSignature {
		return nil, ErrInvalidMzHeader
	}
	if dos.AddressOfNewEXEHeader < 4 {
		return nil, ErrInvalidElfanew
	}

	ntAddr := base + dos.AddressOfNewEXEHeader
	sigBuf, err := r.ReadBytes(ntAddr, 4+binarySize[coffHeader]()+binarySize[optionalHeader32]())
	if err != nil {
		return nil, err
	}

	var signature uint32
	if err := structUnpack(sigBuf, 0, &signature); err != nil {
		return nil, err
	}
	if signature != ImageNTSignature {
		return nil, ErrInvalidPeHeader
	}

	var coff coffHeader
	if err := structUnpack(sigBuf, 4, &coff); err != nil {
		return nil, err
	}
	if coff.SizeOfOptionalHeader != OptionalHeaderSize {
		return nil, ErrUnexpectedOptionalHeaderSize
	}

	var opt optionalHeader32
	if err := structUnpack(sigBuf, 4+uint32(binarySize[coffHeader]()), &opt); err != nil {
		return nil, err
	}
	if opt.Magic != ImageNtOptionalHeader32Magic {
		return nil, ErrInvalidPeHeader
	}

	text := Range{Start: opt.BaseOfCode, End: opt.BaseOfCode + opt.SizeOfCode}
	rdata := Range{Start: opt.BaseOfData, End: opt.BaseOfData + opt.SizeOfInitializedData}
	if text.End > opt.SizeOfImage || text.Start > text.End {
		return nil, ErrBadCodeRange
	}
	if rdata.End > opt.SizeOfImage || rdata.Start > rdata.End {
		return nil, ErrBadDataRange
	}

	return &Header{
		ImageBase:   opt.ImageBase,
		SizeOfImage: opt.SizeOfImage,
		Text:        text,
		Rdata:       rdata,
		Timestamp:   coff.TimeDateStamp,
	}, nil
}

func binarySize[T any]() int {
	var v T
	return structSize(v)
}
