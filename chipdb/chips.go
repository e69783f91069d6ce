package chipdb

/* Known AT32 parts. Several ids appear more than once under different
 * names (re-badged silicon); the first entry in this order is the one
 * reported. Do not sort or deduplicate. */
var chips = [...]ChipRecord{
	{ID: 0xF0050340, FlashSizeKB: 1024, SectorSize: 2048, Name: "AR8F403CGT6-A"},
	{ID: 0xF0050340, FlashSizeKB: 1024, SectorSize: 2048, Name: "AR8F403CGT6"},
	{ID: 0x70050242, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403ACCT7"},
	{ID: 0x70050243, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403ACCU7"},
	{ID: 0x700502CF, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403ACET7"},
	{ID: 0x700502D0, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403ACEU7"},
	{ID: 0x70050346, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403ACGT7"},
	{ID: 0x70050347, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403ACGU7"},
	{ID: 0x70050241, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403ARCT7"},
	{ID: 0x700502CE, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403ARET7"},
	{ID: 0x70050345, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403ARGT7"},
	{ID: 0x70050240, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403AVCT7"},
	{ID: 0x700502CD, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403AVET7"},
	{ID: 0x70050344, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403AVGT7"},
	{ID: 0xF0050355, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403AVGW"},
	{ID: 0x700301CF, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F403CBT6"},
	{ID: 0x70050243, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403CCT6"},
	{ID: 0x7005024E, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403CCU6"},
	{ID: 0x700502CB, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403CET6"},
	{ID: 0x700502CD, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403CEU6"},
	{ID: 0x70050347, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403CGT6"},
	{ID: 0x7005034C, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403CGU6"},
	{ID: 0x70050242, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403RCT6"},
	{ID: 0x700502CA, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403RET6"},
	{ID: 0x70050346, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403RGT6"},
	{ID: 0x70050241, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403VCT6"},
	{ID: 0x700502C9, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403VET6"},
	{ID: 0x70050345, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403VGT6"},
	{ID: 0x70050240, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F403ZCT6"},
	{ID: 0x700502C8, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F403ZET6"},
	{ID: 0x70050344, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F403ZGT6"},
	{ID: 0x70050254, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F407AVCT7"},
	{ID: 0x70050353, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F407AVGT7"},
	{ID: 0x7005024A, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F407RCT7"},
	{ID: 0x700502D2, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F407RET7"},
	{ID: 0x7005034C, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F407RGT7"},
	{ID: 0x70050249, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F407VCT7"},
	{ID: 0x700502D1, FlashSizeKB: 512, SectorSize: 2048, Name: "AT32F407VET7"},
	{ID: 0x7005034B, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F407VGT7"},
	{ID: 0x70030106, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F413C8T7"},
	{ID: 0x700301C3, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F413CBT7"},
	{ID: 0x700301CA, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F413CBU7"},
	{ID: 0x70030242, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F413CCT7"},
	{ID: 0x70030247, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F413CCU7"},
	{ID: 0x700301C5, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F413KBU7-4"},
	{ID: 0x70030244, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F413KCU7-4"},
	{ID: 0x700301C1, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F413RBT7"},
	{ID: 0x70030240, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F413RCT7"},
	{ID: 0x700301CB, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F413TBU7"},
	{ID: 0x70030109, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F415C8T7"},
	{ID: 0x700301C5, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F415CBT7"},
	{ID: 0x700301CD, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F415CBU7"},
	{ID: 0x70030241, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F415CCT7"},
	{ID: 0x7003024C, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F415CCU7"},
	{ID: 0x7003010A, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F415K8U7-4"},
	{ID: 0x700301C6, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F415KBU7-4"},
	{ID: 0x70030242, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F415KCU7-4"},
	{ID: 0x7003010B, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F415R8T7-7"},
	{ID: 0x70030108, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F415R8T7"},
	{ID: 0x700301C7, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F415RBT7-7"},
	{ID: 0x700301C4, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F415RBT7"},
	{ID: 0x700301CF, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F415RBW"},
	{ID: 0x70030243, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F415RCT7-7"},
	{ID: 0x70030240, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F415RCT7"},
	{ID: 0x7003024E, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F415RCW"},
	{ID: 0x5001000C, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421C4T7"},
	{ID: 0x50020086, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421C6T7"},
	{ID: 0x50020100, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421C8T7"},
	{ID: 0xD0020100, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421C8W-YY"},
	{ID: 0x50020117, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421C8W"},
	{ID: 0x50010011, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421F4P7"},
	{ID: 0x50010010, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421F4U7"},
	{ID: 0x5002008B, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421F6P7"},
	{ID: 0x5002008A, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421F6U7"},
	{ID: 0x50020105, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421F8P7"},
	{ID: 0x50020104, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421F8U7"},
	{ID: 0x50010014, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421G4U7"},
	{ID: 0x50020093, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421G6U7"},
	{ID: 0x50020112, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421G8U7"},
	{ID: 0x5001000D, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421K4T7"},
	{ID: 0x5001000F, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421K4U7-4"},
	{ID: 0x5001000E, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421K4U7"},
	{ID: 0x50020087, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421K6T7"},
	{ID: 0x50020089, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421K6U7-4"},
	{ID: 0x50020088, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F421K6U7"},
	{ID: 0x50020101, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421K8T7"},
	{ID: 0x50020103, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421K8U7-4"},
	{ID: 0x50020102, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421K8U7"},
	{ID: 0x50010016, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32F421PF4P7"},
	{ID: 0x50020115, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F421PF8P7"},
	{ID: 0x7003210B, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423C8T7"},
	{ID: 0x7003210E, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423C8U7"},
	{ID: 0x700A21CA, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423CBT7"},
	{ID: 0x700A21CD, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423CBU7"},
	{ID: 0x700A3249, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423CCT7"},
	{ID: 0x700A324C, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423CCU7"},
	{ID: 0x70032115, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423K8U7-4"},
	{ID: 0x700A21D4, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423KBU7-4"},
	{ID: 0x700A3253, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423KCU7-4"},
	{ID: 0x70032108, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423R8T7-7"},
	{ID: 0x70032105, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423R8T7"},
	{ID: 0x700A21C7, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423RBT7-7"},
	{ID: 0x700A21C4, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423RBT7"},
	{ID: 0x700A3246, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423RCT7-7"},
	{ID: 0x700A3243, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423RCT7"},
	{ID: 0x70032112, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423T8U7"},
	{ID: 0x700A21D1, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423TBU7"},
	{ID: 0x700A3250, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423TCU7"},
	{ID: 0x70032102, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F423V8T7"},
	{ID: 0x700A21C1, FlashSizeKB: 128, SectorSize: 1024, Name: "AT32F423VBT7"},
	{ID: 0x700A3240, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F423VCT7"},
	{ID: 0x50092087, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425C6T7"},
	{ID: 0x5009208A, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425C6U7"},
	{ID: 0x50092106, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425C8T7"},
	{ID: 0x50092109, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425C8U7"},
	{ID: 0x50092093, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425F6P7"},
	{ID: 0x50092112, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425F8P7"},
	{ID: 0x50092096, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425G6U7"},
	{ID: 0x50092115, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425G8U7"},
	{ID: 0x5009208D, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425K6T7"},
	{ID: 0x50092090, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425K6U7-4"},
	{ID: 0x5009210C, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425K8T7"},
	{ID: 0x5009210F, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425K8U7-4"},
	{ID: 0x50092084, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425R6T7-7"},
	{ID: 0x50092081, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32F425R6T7"},
	{ID: 0x50092103, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425R8T7-7"},
	{ID: 0x50092100, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32F425R8T7"},
	{ID: 0x7008449A, FlashSizeKB: 192, SectorSize: 4096, Name: "AT32F435CCT7-W"},
	{ID: 0x7008324B, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F435CCT7"},
	{ID: 0x7008449D, FlashSizeKB: 192, SectorSize: 4096, Name: "AT32F435CCU7-W"},
	{ID: 0x7008324E, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F435CCU7"},
	{ID: 0x700844D9, FlashSizeKB: 960, SectorSize: 4096, Name: "AT32F435CGT7-W"},
	{ID: 0x7008334A, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F435CGT7"},
	{ID: 0x700844DC, FlashSizeKB: 960, SectorSize: 4096, Name: "AT32F435CGU7-W"},
	{ID: 0x7008334D, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F435CGU7"},
	{ID: 0x70084558, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435CMT7-E"},
	{ID: 0x70084549, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435CMT7"},
	{ID: 0x7008455B, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435CMU7-E"},
	{ID: 0x7008454C, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435CMU7"},
	{ID: 0x70083248, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F435RCT7"},
	{ID: 0x70083347, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F435RGT7"},
	{ID: 0x70084546, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435RMT7"},
	{ID: 0x70083245, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F435VCT7"},
	{ID: 0x70083344, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F435VGT7"},
	{ID: 0x70084543, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435VMT7"},
	{ID: 0x70083242, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F435ZCT7"},
	{ID: 0x70083341, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F435ZGT7"},
	{ID: 0x70084540, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F435ZMT7"},
	{ID: 0x70083257, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F437RCT7"},
	{ID: 0x70083356, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F437RGT7"},
	{ID: 0x70084555, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F437RMT7"},
	{ID: 0x70083254, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F437VCT7"},
	{ID: 0x70083353, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F437VGT7"},
	{ID: 0x70084552, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F437VMT7"},
	{ID: 0x70083251, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32F437ZCT7"},
	{ID: 0x70083350, FlashSizeKB: 1024, SectorSize: 2048, Name: "AT32F437ZGT7"},
	{ID: 0x7008454F, FlashSizeKB: 4032, SectorSize: 4096, Name: "AT32F437ZMT7"},
	{ID: 0x70030109, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32FEBKC8T7"},
	{ID: 0x10012006, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021C4T7"},
	{ID: 0x1001208D, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021C6T7"},
	{ID: 0x10012114, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021C8T7"},
	{ID: 0x10012001, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021F4P7"},
	{ID: 0x10012002, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021F4U7"},
	{ID: 0x10012088, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021F6P7"},
	{ID: 0x10012089, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021F6U7"},
	{ID: 0x1001210F, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021F8P7"},
	{ID: 0x10012110, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021F8U7"},
	{ID: 0x10012000, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021G4U7"},
	{ID: 0x10012087, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021G6U7"},
	{ID: 0x1001210E, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021G8U7"},
	{ID: 0x10012005, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021K4T7"},
	{ID: 0x10012003, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021K4U7-4"},
	{ID: 0x10012004, FlashSizeKB: 16, SectorSize: 1024, Name: "AT32L021K4U7"},
	{ID: 0x1001208C, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021K6T7"},
	{ID: 0x1001208A, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021K6U7-4"},
	{ID: 0x1001208B, FlashSizeKB: 32, SectorSize: 1024, Name: "AT32L021K6U7"},
	{ID: 0x10012113, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021K8T7"},
	{ID: 0x10012111, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021K8U7-4"},
	{ID: 0x10012112, FlashSizeKB: 64, SectorSize: 1024, Name: "AT32L021K8U7"},
	{ID: 0x70030250, FlashSizeKB: 256, SectorSize: 2048, Name: "AT32WB415CCU7-7"},
	{ID: 0xF00301C2, FlashSizeKB: 128, SectorSize: 1024, Name: "KC9060"},
}
