package jpegenc

import (
	"context"
	"io"

	"github.com/rs/zerolog"
)

const (
	huffmanLengthLimit = 16
	tableIDLuma        = 0
	tableIDChroma      = 1
)

// Encode runs the full pipeline (§2) over src and writes a baseline
// JFIF/JPEG file to dst: color transform, chroma subsampling, MCU block
// reorder, parallel DCT+quantize, per-component categorization, per-class
// canonical Huffman code generation, and JFIF framing.
func Encode(dst io.Writer, src *RGBPlane, opts Options, log zerolog.Logger) error {
	if err := opts.Validate(); err != nil {
		return err
	}

	hc, vc, method := opts.Subsampling.ChromaRates()
	mcuW, mcuH := opts.Subsampling.MCUBlockDimensions()
	padded := PadToMCU(src, mcuW, mcuH)

	ycc := ToYCbCr(padded)
	lumaPlane := Plane{Width: padded.Width, Height: padded.Height, Data: ycc.Y}

	cbData, cbW, cbH := Subsample(ycc.Cb, padded.Width, padded.Height, hc, vc, method)
	crData, _, _ := Subsample(ycc.Cr, padded.Width, padded.Height, hc, vc, method)
	cbPlane := Plane{Width: cbW, Height: cbH, Data: cbData}
	crPlane := Plane{Width: cbW, Height: cbH, Data: crData}

	lumaBlocks := lumaPlane.ExtractBlocks()
	cbBlocks := cbPlane.ExtractBlocks()
	crBlocks := crPlane.ExtractBlocks()

	lumaBW := padded.Width / blockDim
	lumaBH := padded.Height / blockDim
	mcus := InterleaveMCUs(lumaBlocks, cbBlocks, crBlocks, lumaBW, lumaBH, hc, vc)
	log.Debug().Int("mcus", len(mcus)).Int("hc", hc).Int("vc", vc).Msg("block reorder complete")

	lumaBlocksPerMCU := opts.Subsampling.LumaBlocksPerMCU()
	lumaSeq := make([]Block, 0, len(mcus)*lumaBlocksPerMCU)
	cbSeq := make([]Block, 0, len(mcus))
	crSeq := make([]Block, 0, len(mcus))
	for _, m := range mcus {
		lumaSeq = append(lumaSeq, m.Luma...)
		cbSeq = append(cbSeq, m.Cb)
		crSeq = append(crSeq, m.Cr)
	}

	lumaTable, chromaTable := opts.Quantization.Tables()
	ctx := context.Background()

	lumaFreq, err := TransformBlocksParallel(ctx, lumaSeq, &lumaTable, opts.Threads)
	if err != nil {
		return err
	}
	cbFreq, err := TransformBlocksParallel(ctx, cbSeq, &chromaTable, opts.Threads)
	if err != nil {
		return err
	}
	crFreq, err := TransformBlocksParallel(ctx, crSeq, &chromaTable, opts.Threads)
	if err != nil {
		return err
	}

	lumaCat := CategorizeComponent(lumaFreq)
	cbCat := CategorizeComponent(cbFreq)
	crCat := CategorizeComponent(crFreq)

	chromaCat := make([]CategorizedBlock, 0, len(cbCat)+len(crCat))
	chromaCat = append(chromaCat, cbCat...)
	chromaCat = append(chromaCat, crCat...)

	lumaDCLengths := GenerateLengthLimitedCodeLengths(CountDCFrequencies(lumaCat), huffmanLengthLimit)
	lumaACLengths := GenerateLengthLimitedCodeLengths(CountACFrequencies(lumaCat), huffmanLengthLimit)
	chromaDCLengths := GenerateLengthLimitedCodeLengths(CountDCFrequencies(chromaCat), huffmanLengthLimit)
	chromaACLengths := GenerateLengthLimitedCodeLengths(CountACFrequencies(chromaCat), huffmanLengthLimit)

	lumaDCCodes := AssignCanonicalCodes(lumaDCLengths)
	lumaACCodes := AssignCanonicalCodes(lumaACLengths)
	chromaDCCodes := AssignCanonicalCodes(chromaDCLengths)
	chromaACCodes := AssignCanonicalCodes(chromaACLengths)

	framer := NewFramer(dst, log)
	if err := framer.WriteSOI(); err != nil {
		return err
	}
	if err := framer.WriteAPP0(); err != nil {
		return err
	}
	if err := framer.WriteDQT(tableIDLuma, &lumaTable); err != nil {
		return err
	}
	if err := framer.WriteDQT(tableIDChroma, &chromaTable); err != nil {
		return err
	}
	if err := framer.WriteSOF0(src.Width, src.Height, []SOFComponent{
		{ID: ComponentY, H: uint8(hc), V: uint8(vc), QuantID: tableIDLuma},
		{ID: ComponentCb, H: 1, V: 1, QuantID: tableIDChroma},
		{ID: ComponentCr, H: 1, V: 1, QuantID: tableIDChroma},
	}); err != nil {
		return err
	}
	if err := framer.WriteDHT(BuildHuffmanTableSpec(0, tableIDLuma, lumaDCCodes)); err != nil {
		return err
	}
	if err := framer.WriteDHT(BuildHuffmanTableSpec(1, tableIDLuma, lumaACCodes)); err != nil {
		return err
	}
	if err := framer.WriteDHT(BuildHuffmanTableSpec(0, tableIDChroma, chromaDCCodes)); err != nil {
		return err
	}
	if err := framer.WriteDHT(BuildHuffmanTableSpec(1, tableIDChroma, chromaACCodes)); err != nil {
		return err
	}
	if err := framer.WriteSOSHeader([]SOSComponent{
		{ID: ComponentY, DCTable: tableIDLuma, ACTable: tableIDLuma},
		{ID: ComponentCb, DCTable: tableIDChroma, ACTable: tableIDChroma},
		{ID: ComponentCr, DCTable: tableIDChroma, ACTable: tableIDChroma},
	}); err != nil {
		return err
	}

	bw := NewBitWriter(dst)
	bw.SetEntropyMode(true)
	lumaDCWriter := NewHuffmanWriter(bw, lumaDCCodes, "luma-dc")
	lumaACWriter := NewHuffmanWriter(bw, lumaACCodes, "luma-ac")
	chromaDCWriter := NewHuffmanWriter(bw, chromaDCCodes, "chroma-dc")
	chromaACWriter := NewHuffmanWriter(bw, chromaACCodes, "chroma-ac")

	lumaIdx := 0
	for i := range mcus {
		for j := 0; j < lumaBlocksPerMCU; j++ {
			if err := lumaDCWriter.WriteBlock(lumaCat[lumaIdx], lumaACWriter); err != nil {
				return err
			}
			lumaIdx++
		}
		if err := chromaDCWriter.WriteBlock(cbCat[i], chromaACWriter); err != nil {
			return err
		}
		if err := chromaDCWriter.WriteBlock(crCat[i], chromaACWriter); err != nil {
			return err
		}
	}
	if err := bw.FlushEntropy(); err != nil {
		return Wrap(err, ErrSegmentWriteFailed, "SOS")
	}

	return framer.WriteEOI()
}
