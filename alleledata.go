package epipred

// Built-in tool specs. These are data, not behavior: a new tool version is
// a new record here or a TOML file loaded at runtime.

// Class I alleles in bare netMHC 3.x form.
var classIBare = []string{
	"A0101", "A0201", "A0202", "A0203", "A0206", "A0211", "A0212", "A0216",
	"A0301", "A1101", "A2301", "A2402", "A2403", "A2601", "A2902", "A3001",
	"A3002", "A3101", "A3301", "A6801", "A6802", "A6901", "B0702", "B0801",
	"B1501", "B1801", "B2705", "B3501", "B3901", "B4001", "B4002", "B4402",
	"B4403", "B4501", "B5101", "B5301", "B5401", "B5701", "B5801",
	"H-2-Db", "H-2-Dd", "H-2-Kb", "H-2-Kd", "H-2-Kk", "H-2-Ld",
}

// The same repertoire in the HLA-A02:01 form newer tools use.
var classIColon = []string{
	"HLA-A01:01", "HLA-A02:01", "HLA-A02:02", "HLA-A02:03", "HLA-A02:06",
	"HLA-A02:11", "HLA-A02:12", "HLA-A02:16", "HLA-A03:01", "HLA-A11:01",
	"HLA-A23:01", "HLA-A24:02", "HLA-A24:03", "HLA-A26:01", "HLA-A29:02",
	"HLA-A30:01", "HLA-A30:02", "HLA-A31:01", "HLA-A33:01", "HLA-A68:01",
	"HLA-A68:02", "HLA-A69:01", "HLA-B07:02", "HLA-B08:01", "HLA-B15:01",
	"HLA-B18:01", "HLA-B27:05", "HLA-B35:01", "HLA-B39:01", "HLA-B40:01",
	"HLA-B40:02", "HLA-B44:02", "HLA-B44:03", "HLA-B45:01", "HLA-B51:01",
	"HLA-B53:01", "HLA-B54:01", "HLA-B57:01", "HLA-B58:01", "HLA-C04:01",
	"HLA-C06:02", "HLA-C07:01", "HLA-C07:02", "HLA-C12:03",
	"H-2-Db", "H-2-Dd", "H-2-Kb", "H-2-Kd", "H-2-Kk", "H-2-Ld",
}

// Class II repertoire: DRB chains plus combined alpha/beta pairs.
var classII = []string{
	"HLA-DRB1_0101", "HLA-DRB1_0301", "HLA-DRB1_0401", "HLA-DRB1_0404",
	"HLA-DRB1_0405", "HLA-DRB1_0701", "HLA-DRB1_0802", "HLA-DRB1_0901",
	"HLA-DRB1_1101", "HLA-DRB1_1302", "HLA-DRB1_1501", "HLA-DRB3_0101",
	"HLA-DRB4_0101", "HLA-DRB5_0101",
	"HLA-DQA10501-DQB10201", "HLA-DQA10501-DQB10301", "HLA-DQA10301-DQB10302",
	"HLA-DQA10401-DQB10402", "HLA-DQA10101-DQB10501", "HLA-DPA10103-DPB10401",
	"HLA-DPA10201-DPB10101",
}

var builtinSpecs = []*ToolSpec{
	{
		Name:        "netmhc-3.4",
		Version:     "3.4",
		Command:     "netMHC -p {peptides} -a {alleles} -l {length} {options} -xls -xlsfile {out}",
		VersionCmd:  "netMHC --version",
		Lengths:     []int{8, 9, 10, 11},
		Alleles:     classIBare,
		Representer: "bare",
		Parser: ParserSpec{
			Family: "wide",
			// Per-allele blocks of [1-log50k score, affinity nM, rank].
			Wide: WideLayout{
				SkipRows:    1,
				PeptideCol:  1,
				FirstCol:    2,
				Stride:      3,
				ScoreOffset: 0,
				RankOffset:  2,
			},
		},
	},
	{
		Name:        "netmhcpan-2.8",
		Version:     "2.8",
		Command:     "netMHCpan -p {peptides} -a {alleles} -l {length} {options} -xls -xlsfile {out}",
		VersionCmd:  "netMHCpan --version",
		Lengths:     []int{8, 9, 10, 11, 12},
		Alleles:     classIColon,
		Representer: "colon",
		Parser: ParserSpec{
			Family: "long",
			// Rows of [allele, peptide, affinity nM, rank].
			Long: LongLayout{
				SkipRows:   1,
				AlleleCol:  0,
				PeptideCol: 1,
				ScoreCol:   2,
				RankCol:    3,
				Transform:  "ic50",
			},
		},
	},
	{
		Name:        "netmhcii-2.2",
		Version:     "2.2",
		Command:     "netMHCII -p {peptides} -a {alleles} {options} -xls -xlsfile {out}",
		Lengths:     []int{15},
		Alleles:     classII,
		MaxAlleles:  10,
		Representer: "underscore",
		Parser: ParserSpec{
			Family: "wide",
			// One affinity column per allele, raw nM.
			Wide: WideLayout{
				SkipRows:    1,
				PeptideCol:  1,
				FirstCol:    2,
				Stride:      1,
				ScoreOffset: 0,
				RankOffset:  -1,
				Transform:   "ic50",
			},
		},
	},
	{
		Name:        "pickpocket-1.1",
		Version:     "1.1",
		Command:     "PickPocket -p {peptides} -a {alleles} -l {length} {options} -xls -xlsfile {out}",
		Lengths:     []int{8, 9, 10, 11},
		Alleles:     classIColon,
		Representer: "colon",
		Parser: ParserSpec{
			Family: "long",
			// Rows of [allele, peptide, 1-log50k score]; no rank column.
			Long: LongLayout{
				SkipRows:   1,
				AlleleCol:  0,
				PeptideCol: 1,
				ScoreCol:   2,
				RankCol:    -1,
			},
		},
	},
}

func init() {
	for _, s := range builtinSpecs {
		if err := RegisterTool(s); err != nil {
			panic(err)
		}
	}
}
