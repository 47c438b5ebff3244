package content

// Hand-curated per-week publication audio, maintained from the jw.org CDN.
// Keys are the ISO date of the Monday starting the meeting week.

var workbookOverrides = map[string]string{
	"2025-11-03": "https://cfp2.jw-cdn.org/a/b5898cd/1/o/mwb_E_202511_01.mp3",
	"2025-11-10": "https://cfp2.jw-cdn.org/a/056fb19/1/o/mwb_E_202511_02.mp3",
	"2025-11-17": "https://cfp2.jw-cdn.org/a/52f6fc0/1/o/mwb_E_202511_03.mp3",
	"2025-11-24": "https://cfp2.jw-cdn.org/a/80c47d/1/o/mwb_E_202511_04.mp3",
	"2025-12-01": "https://cfp2.jw-cdn.org/a/5fc7877/1/o/mwb_E_202511_05.mp3",
	"2025-12-08": "https://cfp2.jw-cdn.org/a/8c02906/1/o/mwb_E_202511_06.mp3",
	"2025-12-15": "https://cfp2.jw-cdn.org/a/28b09db/1/o/mwb_E_202511_07.mp3",
	"2025-12-22": "https://cfp2.jw-cdn.org/a/6f747e2/1/o/mwb_E_202511_08.mp3",
	"2025-12-29": "https://cfp2.jw-cdn.org/a/2aa888/1/o/mwb_E_202511_09.mp3",
	"2026-01-05": "https://cfp2.jw-cdn.org/a/394ee97/1/o/mwb_E_202601_01.mp3",
	"2026-01-12": "https://cfp2.jw-cdn.org/a/884cd3/1/o/mwb_E_202601_02.mp3",
	"2026-01-19": "https://cfp2.jw-cdn.org/a/d8bc927/1/o/mwb_E_202601_03.mp3",
	"2026-01-26": "https://cfp2.jw-cdn.org/a/611194/1/o/mwb_E_202601_04.mp3",
	"2026-02-02": "https://cfp2.jw-cdn.org/a/bbeaa61/1/o/mwb_E_202601_05.mp3",
	"2026-02-09": "https://cfp2.jw-cdn.org/a/b72739/1/o/mwb_E_202601_06.mp3",
	"2026-02-16": "https://cfp2.jw-cdn.org/a/c97c260/1/o/mwb_E_202601_07.mp3",
	"2026-02-23": "https://cfp2.jw-cdn.org/a/ce27e58/1/o/mwb_E_202601_08.mp3",
	"2026-03-02": "https://cfp2.jw-cdn.org/a/955dffb/1/o/mwb_E_202603_01.mp3",
	"2026-03-09": "https://cfp2.jw-cdn.org/a/87aadf2/1/o/mwb_E_202603_02.mp3",
	"2026-03-16": "https://cfp2.jw-cdn.org/a/ebdd44/1/o/mwb_E_202603_03.mp3",
	"2026-03-23": "https://cfp2.jw-cdn.org/a/b592f4/1/o/mwb_E_202603_04.mp3",
	"2026-03-30": "https://cfp2.jw-cdn.org/a/0bef43b/1/o/mwb_E_202603_05.mp3",
	"2026-04-06": "https://cfp2.jw-cdn.org/a/531e37/1/o/mwb_E_202603_06.mp3",
	"2026-04-13": "https://cfp2.jw-cdn.org/a/09a90f6/1/o/mwb_E_202603_07.mp3",
	"2026-04-20": "https://cfp2.jw-cdn.org/a/4adcbca/1/o/mwb_E_202603_08.mp3",
	"2026-04-27": "https://cfp2.jw-cdn.org/a/262efc69/1/o/mwb_E_202603_09.mp3",
}

var watchtowerOverrides = map[string]string{
	"2025-11-10": "https://cfp2.jw-cdn.org/a/861929/1/o/w_E_202509_01.mp3",
	"2025-11-17": "https://cfp2.jw-cdn.org/a/6a6aca/1/o/w_E_202509_02.mp3",
	"2025-11-24": "https://cfp2.jw-cdn.org/a/155ba6/1/o/w_E_202509_03.mp3",
	"2025-12-01": "https://cfp2.jw-cdn.org/a/4edd2f/1/o/w_E_202509_04.mp3",
	"2025-12-08": "https://cfp2.jw-cdn.org/a/bc2fdcd/1/o/w_E_202510_02.mp3",
	"2025-12-15": "https://cfp2.jw-cdn.org/a/dba45f/1/o/w_E_202510_03.mp3",
	"2025-12-22": "https://cfp2.jw-cdn.org/a/d9f278/1/o/w_E_202510_04.mp3",
	"2025-12-29": "https://cfp2.jw-cdn.org/a/208489/1/o/w_E_202510_05.mp3",
	"2026-01-05": "https://cfp2.jw-cdn.org/a/cba6bc/1/o/w_E_202511_01.mp3",
	"2026-01-12": "https://cfp2.jw-cdn.org/a/cd10e9/1/o/w_E_202511_03.mp3",
	"2026-01-19": "https://cfp2.jw-cdn.org/a/46091e/1/o/w_E_202511_04.mp3",
	"2026-01-26": "https://cfp2.jw-cdn.org/a/c69c8d8/3/o/w_E_202511_05.mp3",
	"2026-02-02": "https://cfp2.jw-cdn.org/a/6fa2e3/1/o/w_E_202512_01.mp3",
	"2026-02-09": "https://cfp2.jw-cdn.org/a/e58ace/1/o/w_E_202512_02.mp3",
	"2026-02-16": "https://cfp2.jw-cdn.org/a/3f127c5/1/o/w_E_202512_03.mp3",
	"2026-02-23": "https://cfp2.jw-cdn.org/a/d62b6e/1/o/w_E_202512_04.mp3",
	"2026-03-02": "https://cfp2.jw-cdn.org/a/b72bcf/1/o/w_E_202601_01.mp3",
	"2026-03-09": "https://cfp2.jw-cdn.org/a/10da6f/1/o/w_E_202601_02.mp3",
	"2026-03-16": "https://cfp2.jw-cdn.org/a/c9fd64/1/o/w_E_202601_03.mp3",
	"2026-03-23": "https://cfp2.jw-cdn.org/a/4e84476/3/o/w_E_202601_04.mp3",
	"2026-03-30": "https://cfp2.jw-cdn.org/a/1b40b22/1/o/w_E_202601_05.mp3",
	"2026-04-06": "https://cfp2.jw-cdn.org/a/b72976b/1/o/w_E_202602_01.mp3",
	"2026-04-13": "https://cfp2.jw-cdn.org/a/94e731/1/o/w_E_202602_02.mp3",
	"2026-04-20": "https://cfp2.jw-cdn.org/a/f4acbdf/1/o/w_E_202602_03.mp3",
	"2026-04-27": "https://cfp2.jw-cdn.org/a/3cf4546/1/o/w_E_202602_04.mp3",
}

type meetingSections struct {
	bibleReading      []string
	congregationStudy []string
}

var weeklySections = map[string]meetingSections{
	"2025-11-03": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/6f232a3/1/o/bi12_22_Ca_E_02.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/7f4ac57/1/o/lfb_E_033.mp3",
			"https://cfp2.jw-cdn.org/a/759436/1/o/lfb_E_034.mp3",
		},
	},
	"2025-11-10": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/a509da/1/o/bi12_22_Ca_E_03.mp3",
			"https://cfp2.jw-cdn.org/a/a985a6/1/o/bi12_22_Ca_E_04.mp3",
			"https://cfp2.jw-cdn.org/a/71cb20/1/o/bi12_22_Ca_E_05.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/0a687c/1/o/lfb_E_035.mp3",
			"https://cfp2.jw-cdn.org/a/15065e/1/o/lfb_E_036.mp3",
		},
	},
	"2025-11-17": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/7fb7bc/1/o/bi12_22_Ca_E_06.mp3",
			"https://cfp2.jw-cdn.org/a/66c957e/1/o/bi12_22_Ca_E_07.mp3",
			"https://cfp2.jw-cdn.org/a/ca3686/1/o/bi12_22_Ca_E_08.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/403ddc0/1/o/lfb_E_037.mp3",
			"https://cfp2.jw-cdn.org/a/63395b/1/o/lfb_E_038.mp3",
		},
	},
	"2025-11-24": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/b19272/1/o/bi12_23_Isa_E_01.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/51d9f2/1/o/lfb_E_039.mp3",
			"https://cfp2.jw-cdn.org/a/d16450/1/o/lfb_E_040.mp3",
		},
	},
	"2025-12-01": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/2d02b6/1/o/bi12_23_Isa_E_02.mp3",
			"https://cfp2.jw-cdn.org/a/d2d454/1/o/bi12_23_Isa_E_03.mp3",
			"https://cfp2.jw-cdn.org/a/022522/1/o/bi12_23_Isa_E_04.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/f68f93/1/o/lfb_E_041.mp3",
			"https://cfp2.jw-cdn.org/a/4dd7c77/1/o/lfb_E_042.mp3",
		},
	},
	"2025-12-08": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/0727398/1/o/bi12_23_Isa_E_05.mp3",
			"https://cfp2.jw-cdn.org/a/8af58d/1/o/bi12_23_Isa_E_06.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/3c11f2/1/o/lfb_E_043.mp3",
			"https://cfp2.jw-cdn.org/a/08e860/1/o/lfb_E_044.mp3",
		},
	},
	"2025-12-15": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/ea50425/1/o/bi12_23_Isa_E_07.mp3",
			"https://cfp2.jw-cdn.org/a/af69fa/1/o/bi12_23_Isa_E_08.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/208f71/1/o/lfb_E_045.mp3",
		},
	},
	"2025-12-22": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/571d9f/1/o/bi12_23_Isa_E_09.mp3",
			"https://cfp2.jw-cdn.org/a/5880ca/1/o/bi12_23_Isa_E_10.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/0c8eeb/1/o/lfb_E_046.mp3",
			"https://cfp2.jw-cdn.org/a/87e49a/1/o/lfb_E_047.mp3",
		},
	},
	"2025-12-29": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/f94f77/1/o/bi12_23_Isa_E_11.mp3",
			"https://cfp2.jw-cdn.org/a/7ac043/1/o/bi12_23_Isa_E_12.mp3",
			"https://cfp2.jw-cdn.org/a/d132f1/1/o/bi12_23_Isa_E_13.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/0073379/1/o/lfb_E_048.mp3",
			"https://cfp2.jw-cdn.org/a/5c22bf/1/o/lfb_E_049.mp3",
		},
	},
	"2026-01-05": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/2adc6f0/1/o/bi12_23_Isa_E_14.mp3",
			"https://cfp2.jw-cdn.org/a/146977/1/o/bi12_23_Isa_E_15.mp3",
			"https://cfp2.jw-cdn.org/a/e71f21/1/o/bi12_23_Isa_E_16.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/3cdb4b1/1/o/lfb_E_050.mp3",
			"https://cfp2.jw-cdn.org/a/48d261a/1/o/lfb_E_051.mp3",
		},
	},
	"2026-01-12": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/08e9fb/1/o/bi12_23_Isa_E_17.mp3",
			"https://cfp2.jw-cdn.org/a/dfd597/1/o/bi12_23_Isa_E_18.mp3",
			"https://cfp2.jw-cdn.org/a/4f20ec3/1/o/bi12_23_Isa_E_19.mp3",
			"https://cfp2.jw-cdn.org/a/c871a1/1/o/bi12_23_Isa_E_20.mp3",
			"https://cfp2.jw-cdn.org/a/f74e414/1/o/bi12_23_Isa_E_21.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/93b9f9a/1/o/lfb_E_052.mp3",
			"https://cfp2.jw-cdn.org/a/ee61fe/1/o/lfb_E_053.mp3",
		},
	},
	"2026-01-19": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/cad88b/1/o/bi12_23_Isa_E_22.mp3",
			"https://cfp2.jw-cdn.org/a/8692cc1/1/o/bi12_23_Isa_E_23.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/e109b19/1/o/lfb_E_054.mp3",
		},
	},
	"2026-01-26": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/9bd174/1/o/bi12_23_Isa_E_24.mp3",
			"https://cfp2.jw-cdn.org/a/5c0ff1c/1/o/bi12_23_Isa_E_25.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/a1b212/1/o/lfb_E_055.mp3",
		},
	},
	"2026-02-02": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/e18340/1/o/bi12_23_Isa_E_26.mp3",
			"https://cfp2.jw-cdn.org/a/96003f/1/o/bi12_23_Isa_E_27.mp3",
			"https://cfp2.jw-cdn.org/a/2d1b1fc/1/o/bi12_23_Isa_E_28.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/8d3330/1/o/lfb_E_056.mp3",
			"https://cfp2.jw-cdn.org/a/c786616/1/o/lfb_E_057.mp3",
		},
	},
	"2026-02-09": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/97a32a9/1/o/bi12_23_Isa_E_29.mp3",
			"https://cfp2.jw-cdn.org/a/6c5299/1/o/bi12_23_Isa_E_30.mp3",
			"https://cfp2.jw-cdn.org/a/50df2f3/1/o/bi12_23_Isa_E_31.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/3695d6/1/o/lfb_E_058.mp3",
			"https://cfp2.jw-cdn.org/a/b81606/1/o/lfb_E_059.mp3",
		},
	},
	"2026-02-16": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/3f6cdc/1/o/bi12_23_Isa_E_32.mp3",
			"https://cfp2.jw-cdn.org/a/cbf3b3/1/o/bi12_23_Isa_E_33.mp3",
			"https://cfp2.jw-cdn.org/a/b86778d/1/o/bi12_23_Isa_E_34.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/77a1f9/1/o/lfb_E_060.mp3",
			"https://cfp2.jw-cdn.org/a/368cac/1/o/lfb_E_061.mp3",
		},
	},
	"2026-02-23": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/824152/1/o/bi12_23_Isa_E_35.mp3",
			"https://cfp2.jw-cdn.org/a/7253b2/1/o/bi12_23_Isa_E_36.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/4978c46/1/o/lfb_E_062.mp3",
		},
	},
	"2026-03-02": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/33a78f/1/o/bi12_23_Isa_E_37.mp3",
			"https://cfp2.jw-cdn.org/a/c549e11/1/o/bi12_23_Isa_E_38.mp3",
			"https://cfp2.jw-cdn.org/a/f0bbfd/1/o/bi12_23_Isa_E_39.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/7b20745/1/o/lfb_E_063.mp3",
			"https://cfp2.jw-cdn.org/a/f9e391c/1/o/lfb_E_064.mp3",
		},
	},
	"2026-03-09": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/748fcb/1/o/bi12_23_Isa_E_40.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/8e53f1/1/o/lfb_E_065.mp3",
			"https://cfp2.jw-cdn.org/a/c9075b/1/o/lfb_E_066.mp3",
		},
	},
	"2026-03-16": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/3d5911/1/o/bi12_23_Isa_E_41.mp3",
			"https://cfp2.jw-cdn.org/a/cdbb53/1/o/bi12_23_Isa_E_42.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/ae53008/1/o/lfb_E_067.mp3",
			"https://cfp2.jw-cdn.org/a/9026e1/1/o/lfb_E_068.mp3",
		},
	},
	"2026-03-23": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/e9eaa68/1/o/bi12_23_Isa_E_43.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/d67f0c9/1/o/lfb_E_069.mp3",
			"https://cfp2.jw-cdn.org/a/51c2a3ae/1/o/lfb_E_070.mp3",
		},
	},
	"2026-03-30": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/e76328/1/o/bi12_23_Isa_E_44.mp3",
			"https://cfp2.jw-cdn.org/a/eb4b628/1/o/bi12_23_Isa_E_45.mp3",
			"https://cfp2.jw-cdn.org/a/9204189/1/o/bi12_23_Isa_E_46.mp3",
			"https://cfp2.jw-cdn.org/a/1e95a9/1/o/bi12_23_Isa_E_47.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/fb8ed0/1/o/lfb_E_071.mp3",
			"https://cfp2.jw-cdn.org/a/2bdb47/1/o/lfb_E_072.mp3",
		},
	},
	"2026-04-06": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/9530d2e/1/o/bi12_23_Isa_E_48.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/d2afbd/1/o/lfb_E_073.mp3",
			"https://cfp2.jw-cdn.org/a/9b89ad/1/o/lfb_E_074.mp3",
		},
	},
	"2026-04-13": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/f82ea1/1/o/bi12_23_Isa_E_49.mp3",
			"https://cfp2.jw-cdn.org/a/ddc299/1/o/bi12_23_Isa_E_50.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/43820c0/1/o/lfb_E_075.mp3",
			"https://cfp2.jw-cdn.org/a/6072394/1/o/lfb_E_076.mp3",
		},
	},
	"2026-04-20": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/98063e4/1/o/bi12_23_Isa_E_51.mp3",
			"https://cfp2.jw-cdn.org/a/1a0c89/1/o/bi12_23_Isa_E_52.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/c287ad/1/o/lfb_E_077.mp3",
			"https://cfp2.jw-cdn.org/a/7122d4/1/o/lfb_E_078.mp3",
		},
	},
	"2026-04-27": {
		bibleReading: []string{
			"https://cfp2.jw-cdn.org/a/903f76/1/o/bi12_23_Isa_E_53.mp3",
			"https://cfp2.jw-cdn.org/a/4936e20/1/o/bi12_23_Isa_E_54.mp3",
			"https://cfp2.jw-cdn.org/a/ce2722a/1/o/bi12_23_Isa_E_55.mp3",
		},
		congregationStudy: []string{
			"https://cfp2.jw-cdn.org/a/e11da0/1/o/lfb_E_079.mp3",
			"https://cfp2.jw-cdn.org/a/2ef28e/1/o/lfb_E_080.mp3",
		},
	},
}
