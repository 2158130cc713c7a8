package knowledge

import "github.com/pedroganco/sanum/internal/domain"

// defaultEntries is the curated marker table used by Default. Entries are
// listed in lookup priority order: when two entries share a name or alias,
// the earlier one wins.
func defaultEntries() []domain.MarkerInfo {
	return []domain.MarkerInfo{
		// Hematology
		{
			Name:     "Hemoglobina",
			Aliases:  []string{"HGB", "Hb", "Hemoglobina (HGB)"},
			Unit:     "g/dL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(13), Max: domain.Float(17), Sex: domain.MALE},
				{Min: domain.Float(12), Max: domain.Float(16), Sex: domain.FEMALE},
			},
			WhatIs:       "Proteína presente nos glóbulos vermelhos do sangue.",
			WhatFor:      "Responsável por transportar oxigénio dos pulmões para todos os tecidos do corpo.",
			HighMeaning:  "Pode indicar desidratação, viver em altitude elevada, doenças pulmonares ou policitemia.",
			LowMeaning:   "Pode indicar anemia (falta de ferro, vitamina B12 ou ácido fólico), perda de sangue ou doenças crónicas.",
			CommonCauses: []string{"Anemia ferropénica", "Perda de sangue", "Deficiência de B12", "Desidratação", "Doenças pulmonares"},
		},
		{
			Name:     "Eritrócitos",
			Aliases:  []string{"RBC", "Glóbulos Vermelhos", "Eritrócitos (RBC)"},
			Unit:     "x10⁶/µL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(4.5), Max: domain.Float(5.5), Sex: domain.MALE},
				{Min: domain.Float(4), Max: domain.Float(5), Sex: domain.FEMALE},
			},
			WhatIs:       "Glóbulos vermelhos, as células que transportam a hemoglobina.",
			WhatFor:      "Transportam oxigénio e dióxido de carbono pelo corpo.",
			HighMeaning:  "Pode indicar policitemia, desidratação ou viver em altitude.",
			LowMeaning:   "Pode indicar anemia, perda de sangue ou doenças da medula óssea.",
			CommonCauses: []string{"Anemia", "Desidratação", "Doenças da medula óssea", "Perda de sangue"},
		},
		{
			Name:     "Hematócrito",
			Aliases:  []string{"HCT", "Ht", "Hematócrito (HCT)"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(40), Max: domain.Float(50), Sex: domain.MALE},
				{Min: domain.Float(36), Max: domain.Float(44), Sex: domain.FEMALE},
			},
			WhatIs:       "Percentagem do volume de sangue ocupada pelos glóbulos vermelhos.",
			WhatFor:      "Avalia a capacidade do sangue transportar oxigénio.",
			HighMeaning:  "Pode indicar desidratação, policitemia ou doenças pulmonares.",
			LowMeaning:   "Pode indicar anemia, perda de sangue ou excesso de hidratação.",
			CommonCauses: []string{"Anemia", "Desidratação", "Perda de sangue", "Policitemia"},
		},
		{
			Name:     "V.G.M.",
			Aliases:  []string{"VGM", "MCV", "Volume Globular Médio"},
			Unit:     "fL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(80), Max: domain.Float(97)},
			},
			WhatIs:       "Volume médio de cada glóbulo vermelho.",
			WhatFor:      "Ajuda a classificar o tipo de anemia (micro, normo ou macrocítica).",
			HighMeaning:  "Anemias macrocíticas (deficiência de B12 ou ácido fólico, alcoolismo).",
			LowMeaning:   "Anemias microcíticas (deficiência de ferro, talassemia).",
			CommonCauses: []string{"Deficiência de ferro", "Deficiência de B12", "Alcoolismo", "Talassemia"},
		},
		{
			Name:     "H.G.M.",
			Aliases:  []string{"HGM", "MCH", "Hemoglobina Globular Média"},
			Unit:     "pg",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(27), Max: domain.Float(32)},
			},
			WhatIs:       "Quantidade média de hemoglobina em cada glóbulo vermelho.",
			WhatFor:      "Complementa o VGM na classificação de anemias.",
			HighMeaning:  "Geralmente acompanha VGM elevado (anemias macrocíticas).",
			LowMeaning:   "Geralmente acompanha VGM baixo (anemias microcíticas).",
			CommonCauses: []string{"Deficiência de ferro", "Deficiência de B12", "Talassemia"},
		},
		{
			Name:     "C.M.H.G.",
			Aliases:  []string{"CMHG", "MCHC", "Concentração Média de Hemoglobina Globular"},
			Unit:     "g/dL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(32), Max: domain.Float(36)},
			},
			WhatIs:       "Concentração média de hemoglobina dentro dos glóbulos vermelhos.",
			WhatFor:      "Avalia se os glóbulos vermelhos têm hemoglobina em concentração normal.",
			HighMeaning:  "Raro, pode indicar esferocitose hereditária.",
			LowMeaning:   "Pode indicar anemia ferropénica ou talassemia.",
			CommonCauses: []string{"Anemia ferropénica", "Talassemia", "Esferocitose"},
		},
		{
			Name:     "R.D.W.",
			Aliases:  []string{"RDW", "Amplitude de Distribuição dos Eritrócitos"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(11.6), Max: domain.Float(14)},
			},
			WhatIs:       "Variação no tamanho dos glóbulos vermelhos.",
			WhatFor:      "Ajuda a identificar diferentes tipos de anemia.",
			HighMeaning:  "Indica variação significativa no tamanho dos glóbulos (deficiência de ferro, B12, ou anemia mista).",
			LowMeaning:   "Glóbulos vermelhos com tamanho uniforme (normal ou talassemia).",
			CommonCauses: []string{"Deficiência de ferro", "Deficiência de B12", "Anemia mista"},
		},
		{
			Name:     "Leucócitos",
			Aliases:  []string{"WBC", "Glóbulos Brancos", "Leucócitos (WBC)"},
			Unit:     "x10³/µL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(4), Max: domain.Float(10)},
			},
			WhatIs:       "Glóbulos brancos, células de defesa do organismo.",
			WhatFor:      "Protegem o corpo contra infeções e doenças.",
			HighMeaning:  "Pode indicar infeção, inflamação, leucemia ou stress físico.",
			LowMeaning:   "Pode indicar infeção viral, doenças da medula óssea ou efeito de medicamentos.",
			CommonCauses: []string{"Infeção", "Inflamação", "Leucemia", "Infeção viral", "Medicamentos"},
		},
		{
			Name:     "Neutrófilos",
			Aliases:  []string{"Neutrophils", "Segmentados"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(40), Max: domain.Float(80)},
			},
			WhatIs:       "Tipo de glóbulo branco mais abundante.",
			WhatFor:      "Primeira linha de defesa contra infeções bacterianas.",
			HighMeaning:  "Geralmente indica infeção bacteriana aguda ou inflamação.",
			LowMeaning:   "Pode indicar infeção viral, medicamentos ou doenças da medula.",
			CommonCauses: []string{"Infeção bacteriana", "Infeção viral", "Medicamentos", "Inflamação"},
		},
		{
			Name:     "Linfócitos",
			Aliases:  []string{"Lymphocytes"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(20), Max: domain.Float(40)},
			},
			WhatIs:       "Tipo de glóbulo branco responsável pela imunidade específica.",
			WhatFor:      "Produzem anticorpos e destroem células infetadas ou cancerosas.",
			HighMeaning:  "Pode indicar infeção viral, leucemia linfocítica ou mononucleose.",
			LowMeaning:   "Pode indicar imunossupressão, HIV ou efeito de medicamentos.",
			CommonCauses: []string{"Infeção viral", "Leucemia", "HIV", "Imunossupressão"},
		},
		{
			Name:     "Monócitos",
			Aliases:  []string{"Monocytes"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(2), Max: domain.Float(10)},
			},
			WhatIs:       "Tipo de glóbulo branco que se transforma em macrófagos.",
			WhatFor:      "Limpam tecidos de células mortas e combatem infeções crónicas.",
			HighMeaning:  "Pode indicar infeções crónicas, tuberculose ou doenças autoimunes.",
			LowMeaning:   "Geralmente sem significado clínico relevante.",
			CommonCauses: []string{"Infeções crónicas", "Tuberculose", "Doenças autoimunes"},
		},
		{
			Name:     "Eosinófilos",
			Aliases:  []string{"Eosinophils"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(1), Max: domain.Float(6)},
			},
			WhatIs:       "Tipo de glóbulo branco envolvido em reações alérgicas.",
			WhatFor:      "Combatem parasitas e participam em reações alérgicas.",
			HighMeaning:  "Pode indicar alergias, asma, parasitas ou doenças de pele.",
			LowMeaning:   "Geralmente sem significado clínico.",
			CommonCauses: []string{"Alergias", "Asma", "Parasitas", "Doenças de pele"},
		},
		{
			Name:     "Basófilos",
			Aliases:  []string{"Basophils"},
			Unit:     "%",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(0), Max: domain.Float(2)},
			},
			WhatIs:       "Tipo de glóbulo branco menos comum.",
			WhatFor:      "Envolvidos em reações alérgicas e libertam histamina.",
			HighMeaning:  "Raro, pode indicar leucemia ou reações alérgicas graves.",
			LowMeaning:   "Geralmente sem significado clínico.",
			CommonCauses: []string{"Reações alérgicas", "Leucemia"},
		},
		{
			Name:     "Plaquetas",
			Aliases:  []string{"PLT", "Trombócitos", "Plaquetas (PLT)"},
			Unit:     "x10³/µL",
			Category: domain.HEMATOLOGY,
			References: []domain.ReferenceRange{
				{Min: domain.Float(150), Max: domain.Float(400)},
			},
			WhatIs:       "Células responsáveis pela coagulação do sangue.",
			WhatFor:      "Formam coágulos para parar hemorragias.",
			HighMeaning:  "Pode indicar inflamação, anemia ferropénica ou doenças mieloproliferativas.",
			LowMeaning:   "Pode indicar risco de hemorragia, doenças da medula ou destruição plaquetária.",
			CommonCauses: []string{"Inflamação", "Doenças da medula", "Destruição imunológica", "Medicamentos"},
		},

		// Carbohydrate metabolism
		{
			Name:     "Glicose",
			Aliases:  []string{"Glicemia", "Glucose", "Glicose em jejum", "Glicémia"},
			Unit:     "mg/dL",
			Category: domain.METABOLISM,
			References: []domain.ReferenceRange{
				{Min: domain.Float(70), Max: domain.Float(110)},
			},
			WhatIs:       "Açúcar principal no sangue, fonte de energia do corpo.",
			WhatFor:      "Avalia o metabolismo dos açúcares e rastreio de diabetes.",
			HighMeaning:  "Pode indicar diabetes, pré-diabetes ou resistência à insulina.",
			LowMeaning:   "Pode indicar hipoglicemia, jejum prolongado ou excesso de insulina.",
			CommonCauses: []string{"Diabetes", "Pré-diabetes", "Hipoglicemia", "Jejum prolongado"},
		},
		{
			Name:     "HbA1c",
			Aliases:  []string{"Hemoglobina Glicada", "Hemoglobina A1c", "A1C"},
			Unit:     "%",
			Category: domain.METABOLISM,
			References: []domain.ReferenceRange{
				{Min: domain.Float(4), Max: domain.Float(6)},
			},
			WhatIs:       "Hemoglobina ligada à glicose, reflete média de glicemia dos últimos 2-3 meses.",
			WhatFor:      "Monitorização do controlo glicémico em diabéticos.",
			HighMeaning:  "Indica controlo glicémico inadequado ou diabetes mal controlada.",
			LowMeaning:   "Geralmente bom sinal (bom controlo), mas pode indicar anemia ou hipoglicemia recorrente.",
			CommonCauses: []string{"Diabetes mal controlada", "Anemia", "Controlo glicémico adequado"},
		},

		// Lipids
		{
			Name:     "Colesterol Total",
			Aliases:  []string{"Colesterol", "CT", "Colesterol total"},
			Unit:     "mg/dL",
			Category: domain.LIPIDS,
			References: []domain.ReferenceRange{
				{Max: domain.Float(190)},
			},
			WhatIs:       "Soma de todos os tipos de colesterol no sangue.",
			WhatFor:      "Avalia risco cardiovascular.",
			HighMeaning:  "Aumenta risco de doenças cardiovasculares, aterosclerose e enfarte.",
			LowMeaning:   "Geralmente não é preocupante, pode ocorrer em desnutrição ou doenças hepáticas.",
			CommonCauses: []string{"Dieta rica em gorduras", "Sedentarismo", "Genética", "Diabetes", "Hipotiroidismo"},
		},
		{
			Name:     "Colesterol HDL",
			Aliases:  []string{"HDL", "HDL-Colesterol", "C-HDL", "Colesterol HDL"},
			Unit:     "mg/dL",
			Category: domain.LIPIDS,
			References: []domain.ReferenceRange{
				{Min: domain.Float(40)},
			},
			WhatIs:       "Colesterol 'bom', remove excesso de colesterol das artérias.",
			WhatFor:      "Protege contra doenças cardiovasculares.",
			HighMeaning:  "Excelente! Quanto mais alto, melhor proteção cardiovascular.",
			LowMeaning:   "Aumenta risco de doenças cardiovasculares.",
			CommonCauses: []string{"Sedentarismo", "Tabagismo", "Diabetes", "Obesidade"},
		},
		{
			Name:     "Colesterol LDL",
			Aliases:  []string{"LDL", "LDL-Colesterol", "C-LDL", "Colesterol LDL"},
			Unit:     "mg/dL",
			Category: domain.LIPIDS,
			References: []domain.ReferenceRange{
				{Max: domain.Float(115)},
			},
			WhatIs:       "Colesterol 'mau', deposita-se nas artérias.",
			WhatFor:      "Principal fator de risco para aterosclerose.",
			HighMeaning:  "Aumenta significativamente risco de enfarte e AVC.",
			LowMeaning:   "Excelente para prevenção cardiovascular.",
			CommonCauses: []string{"Dieta rica em gorduras saturadas", "Sedentarismo", "Genética", "Diabetes"},
		},
		{
			Name:     "Triglicéridos",
			Aliases:  []string{"TG", "Triglicerídeos", "Triglicéridos"},
			Unit:     "mg/dL",
			Category: domain.LIPIDS,
			References: []domain.ReferenceRange{
				{Max: domain.Float(150)},
			},
			WhatIs:       "Tipo de gordura armazenada no corpo, vinda da alimentação.",
			WhatFor:      "Avalia risco cardiovascular e metabólico.",
			HighMeaning:  "Aumenta risco de doenças cardiovasculares, pancreatite e síndrome metabólico.",
			LowMeaning:   "Geralmente bom sinal.",
			CommonCauses: []string{"Dieta rica em açúcares", "Álcool", "Obesidade", "Diabetes", "Sedentarismo"},
		},

		// Renal function
		{
			Name:     "Ureia",
			Aliases:  []string{"BUN", "Azoto Ureico", "Urémia"},
			Unit:     "mg/dL",
			Category: domain.RENAL,
			References: []domain.ReferenceRange{
				{Min: domain.Float(15), Max: domain.Float(50)},
			},
			WhatIs:       "Produto de degradação das proteínas, eliminado pelos rins.",
			WhatFor:      "Avalia função renal e estado de hidratação.",
			HighMeaning:  "Pode indicar insuficiência renal, desidratação ou dieta muito rica em proteínas.",
			LowMeaning:   "Pode indicar má nutrição, doença hepática ou excesso de hidratação.",
			CommonCauses: []string{"Insuficiência renal", "Desidratação", "Dieta rica em proteínas", "Doença hepática"},
		},
		{
			Name:     "Creatinina",
			Aliases:  []string{"Creat", "Creatininémia"},
			Unit:     "mg/dL",
			Category: domain.RENAL,
			References: []domain.ReferenceRange{
				{Min: domain.Float(0.7), Max: domain.Float(1.3), Sex: domain.MALE},
				{Min: domain.Float(0.5), Max: domain.Float(1.1), Sex: domain.FEMALE},
			},
			WhatIs:       "Produto de degradação muscular, eliminado pelos rins.",
			WhatFor:      "Principal marcador da função renal.",
			HighMeaning:  "Indica insuficiência renal ou desidratação.",
			LowMeaning:   "Pode ocorrer em pessoas com baixa massa muscular.",
			CommonCauses: []string{"Insuficiência renal", "Desidratação", "Exercício físico intenso", "Baixa massa muscular"},
		},
		{
			Name:     "Ácido Úrico",
			Aliases:  []string{"Urato", "Ácido úrico"},
			Unit:     "mg/dL",
			Category: domain.RENAL,
			References: []domain.ReferenceRange{
				{Min: domain.Float(3.5), Max: domain.Float(7.2), Sex: domain.MALE},
				{Min: domain.Float(2.6), Max: domain.Float(6), Sex: domain.FEMALE},
			},
			WhatIs:       "Produto final do metabolismo de purinas (carnes, peixes, álcool).",
			WhatFor:      "Avalia risco de gota e função renal.",
			HighMeaning:  "Pode causar gota (cristais nas articulações) ou cálculos renais.",
			LowMeaning:   "Geralmente sem significado clínico.",
			CommonCauses: []string{"Gota", "Dieta rica em purinas", "Álcool", "Insuficiência renal", "Diuréticos"},
		},

		// Liver function
		{
			Name:     "AST",
			Aliases:  []string{"TGO", "GOT", "Aspartato Aminotransferase", "Aspartato aminotransferase (AST)"},
			Unit:     "U/L",
			Category: domain.HEPATIC,
			References: []domain.ReferenceRange{
				{Max: domain.Float(34)},
			},
			WhatIs:       "Enzima presente no fígado, coração e músculos.",
			WhatFor:      "Avalia lesão hepática ou cardíaca.",
			HighMeaning:  "Pode indicar hepatite, cirrose, enfarte do miocárdio ou lesão muscular.",
			LowMeaning:   "Geralmente sem significado clínico.",
			CommonCauses: []string{"Hepatite", "Álcool", "Esteatose hepática", "Medicamentos", "Enfarte"},
		},
		{
			Name:     "ALT",
			Aliases:  []string{"TGP", "GPT", "Alanina Aminotransferase", "Alanina aminotransferase (ALT)"},
			Unit:     "U/L",
			Category: domain.HEPATIC,
			References: []domain.ReferenceRange{
				{Min: domain.Float(10), Max: domain.Float(49)},
			},
			WhatIs:       "Enzima mais específica do fígado que a AST.",
			WhatFor:      "Principal marcador de lesão hepática.",
			HighMeaning:  "Indica lesão ou inflamação do fígado (hepatite, esteatose, medicamentos).",
			LowMeaning:   "Geralmente bom sinal.",
			CommonCauses: []string{"Hepatite", "Esteatose hepática", "Álcool", "Medicamentos", "Obesidade"},
		},
		{
			Name:     "GGT",
			Aliases:  []string{"Gama GT", "γ-GT", "Gama-glutamiltransferase", "Gama-GT"},
			Unit:     "U/L",
			Category: domain.HEPATIC,
			References: []domain.ReferenceRange{
				{Max: domain.Float(55), Sex: domain.MALE},
				{Max: domain.Float(38), Sex: domain.FEMALE},
			},
			WhatIs:       "Enzima do fígado sensível ao álcool e medicamentos.",
			WhatFor:      "Avalia lesão hepática, especialmente relacionada ao álcool.",
			HighMeaning:  "Pode indicar doença hepática, consumo de álcool ou obstrução biliar.",
			LowMeaning:   "Geralmente bom sinal.",
			CommonCauses: []string{"Álcool", "Esteatose hepática", "Medicamentos", "Doenças biliares"},
		},
		{
			Name:     "Fosfatase Alcalina",
			Aliases:  []string{"FA", "ALP", "Fosfatase alcalina"},
			Unit:     "U/L",
			Category: domain.HEPATIC,
			References: []domain.ReferenceRange{
				{Min: domain.Float(40), Max: domain.Float(130)},
			},
			WhatIs:       "Enzima presente no fígado e ossos.",
			WhatFor:      "Avalia doenças hepáticas ou ósseas.",
			HighMeaning:  "Pode indicar doenças biliares, metástases ósseas ou crescimento ósseo (crianças/adolescentes).",
			LowMeaning:   "Pode indicar desnutrição ou deficiência de zinco.",
			CommonCauses: []string{"Doenças biliares", "Metástases ósseas", "Hepatite", "Crescimento ósseo"},
		},
		{
			Name:     "Bilirrubina Total",
			Aliases:  []string{"BT", "Bilirrubina"},
			Unit:     "mg/dL",
			Category: domain.HEPATIC,
			References: []domain.ReferenceRange{
				{Max: domain.Float(1.2)},
			},
			WhatIs:       "Produto da degradação da hemoglobina.",
			WhatFor:      "Avalia função hepática e vias biliares.",
			HighMeaning:  "Pode causar icterícia (pele amarela) e indicar doença hepática ou obstrução biliar.",
			LowMeaning:   "Geralmente sem significado clínico.",
			CommonCauses: []string{"Hepatite", "Cirrose", "Cálculos biliares", "Hemólise", "Síndrome de Gilbert"},
		},

		// Thyroid
		{
			Name:     "TSH",
			Aliases:  []string{"Tirotrofina", "Hormona Tireoestimulante", "Tireoestimulina (TSH)", "Tireoestimulina"},
			Unit:     "mUI/L",
			Category: domain.THYROID,
			References: []domain.ReferenceRange{
				{Min: domain.Float(0.35), Max: domain.Float(5.5)},
			},
			WhatIs:       "Hormona produzida pela hipófise que regula a tiroide.",
			WhatFor:      "Principal exame para avaliar função tiroideia.",
			HighMeaning:  "Indica hipotiroidismo (tiroide lenta).",
			LowMeaning:   "Indica hipertiroidismo (tiroide acelerada).",
			CommonCauses: []string{"Hipotiroidismo", "Hipertiroidismo", "Doença de Hashimoto", "Doença de Graves"},
		},
		{
			Name:     "T4 Livre",
			Aliases:  []string{"FT4", "T4L", "Tiroxina Livre", "Tiroxina Livre (FT4)"},
			Unit:     "ng/dL",
			Category: domain.THYROID,
			References: []domain.ReferenceRange{
				{Min: domain.Float(0.8), Max: domain.Float(1.76)},
			},
			WhatIs:       "Hormona produzida pela tiroide na forma livre (ativa).",
			WhatFor:      "Avalia função tiroideia juntamente com o TSH.",
			HighMeaning:  "Pode indicar hipertiroidismo.",
			LowMeaning:   "Pode indicar hipotiroidismo.",
			CommonCauses: []string{"Hipertiroidismo", "Hipotiroidismo", "Medicamentos para tiroide"},
		},
		{
			Name:     "T3 Livre",
			Aliases:  []string{"FT3", "T3L", "Triiodotironina Livre"},
			Unit:     "pg/mL",
			Category: domain.THYROID,
			References: []domain.ReferenceRange{
				{Min: domain.Float(2.3), Max: domain.Float(4.2)},
			},
			WhatIs:       "Hormona tiroideia mais ativa que o T4.",
			WhatFor:      "Avalia hipertiroidismo e monitorização de tratamento.",
			HighMeaning:  "Pode indicar hipertiroidismo.",
			LowMeaning:   "Pode indicar hipotiroidismo ou doença grave.",
			CommonCauses: []string{"Hipertiroidismo", "Hipotiroidismo", "Doença de Graves"},
		},

		// Iron
		{
			Name:     "Ferro",
			Aliases:  []string{"Fe", "Ferro sérico", "Ferro serico"},
			Unit:     "µg/dL",
			Category: domain.IRON,
			References: []domain.ReferenceRange{
				{Min: domain.Float(65), Max: domain.Float(175), Sex: domain.MALE},
				{Min: domain.Float(50), Max: domain.Float(170), Sex: domain.FEMALE},
			},
			WhatIs:       "Mineral essencial para produção de hemoglobina.",
			WhatFor:      "Avalia anemia ferropénica e sobrecarga de ferro.",
			HighMeaning:  "Pode indicar hemocromatose (sobrecarga de ferro) ou hemólise.",
			LowMeaning:   "Indica deficiência de ferro, principal causa de anemia.",
			CommonCauses: []string{"Anemia ferropénica", "Hemocromatose", "Dieta pobre em ferro", "Perda de sangue"},
		},
		{
			Name:     "Ferritina",
			Aliases:  []string{"Ferrit"},
			Unit:     "ng/mL",
			Category: domain.IRON,
			References: []domain.ReferenceRange{
				{Min: domain.Float(30), Max: domain.Float(400), Sex: domain.MALE},
				{Min: domain.Float(15), Max: domain.Float(150), Sex: domain.FEMALE},
			},
			WhatIs:       "Proteína que armazena ferro no corpo.",
			WhatFor:      "Melhor marcador das reservas de ferro.",
			HighMeaning:  "Pode indicar inflamação, hemocromatose ou doenças hepáticas.",
			LowMeaning:   "Indica reservas baixas de ferro, mesmo antes de anemia manifesta.",
			CommonCauses: []string{"Deficiência de ferro", "Hemocromatose", "Inflamação", "Doenças hepáticas"},
		},
		{
			Name:     "Transferrina",
			Aliases:  []string{"Transferrin"},
			Unit:     "mg/dL",
			Category: domain.IRON,
			References: []domain.ReferenceRange{
				{Min: domain.Float(200), Max: domain.Float(360)},
			},
			WhatIs:       "Proteína que transporta ferro no sangue.",
			WhatFor:      "Avalia metabolismo do ferro.",
			HighMeaning:  "Geralmente indica deficiência de ferro (corpo tenta compensar).",
			LowMeaning:   "Pode indicar inflamação, má nutrição ou sobrecarga de ferro.",
			CommonCauses: []string{"Deficiência de ferro", "Inflamação", "Má nutrição"},
		},

		// Vitamins
		{
			Name:     "Vitamina D",
			Aliases:  []string{"25-OH Vitamina D", "25-Hidroxivitamina D", "Calcidiol", "Vitamina D3"},
			Unit:     "ng/mL",
			Category: domain.VITAMINS,
			References: []domain.ReferenceRange{
				{Min: domain.Float(30), Max: domain.Float(100)},
			},
			WhatIs:       "Vitamina essencial para absorção de cálcio e saúde óssea.",
			WhatFor:      "Previne osteoporose, regula imunidade e humor.",
			HighMeaning:  "Raro, pode ocorrer com suplementação excessiva (toxicidade rara).",
			LowMeaning:   "Muito comum em Portugal, aumenta risco de osteoporose, fraturas e problemas imunológicos.",
			CommonCauses: []string{"Pouca exposição solar", "Dieta pobre", "Má absorção", "Obesidade"},
		},
		{
			Name:     "Vitamina B12",
			Aliases:  []string{"Cianocobalamina", "Cobalamina", "B12"},
			Unit:     "pg/mL",
			Category: domain.VITAMINS,
			References: []domain.ReferenceRange{
				{Min: domain.Float(200), Max: domain.Float(900)},
			},
			WhatIs:       "Vitamina essencial para produção de glóbulos vermelhos e função nervosa.",
			WhatFor:      "Previne anemia megaloblástica e problemas neurológicos.",
			HighMeaning:  "Geralmente sem significado clínico, pode ocorrer com suplementação.",
			LowMeaning:   "Pode causar anemia, fadiga, formigueiros e problemas de memória.",
			CommonCauses: []string{"Vegetarianismo/veganismo", "Má absorção", "Gastrite atrófica", "Idade avançada"},
		},
		{
			Name:     "Ácido Fólico",
			Aliases:  []string{"Folato", "Vitamina B9", "B9"},
			Unit:     "ng/mL",
			Category: domain.VITAMINS,
			References: []domain.ReferenceRange{
				{Min: domain.Float(3), Max: domain.Float(17)},
			},
			WhatIs:       "Vitamina do complexo B, essencial para produção de DNA e glóbulos vermelhos.",
			WhatFor:      "Previne anemia megaloblástica e malformações fetais.",
			HighMeaning:  "Geralmente sem significado clínico, pode mascarar deficiência de B12.",
			LowMeaning:   "Pode causar anemia, fadiga e malformações fetais na gravidez.",
			CommonCauses: []string{"Dieta pobre em vegetais", "Alcoolismo", "Má absorção", "Gravidez"},
		},

		// Inflammation
		{
			Name:     "PCR",
			Aliases:  []string{"Proteína C Reactiva", "CRP", "Proteína C Reativa"},
			Unit:     "mg/L",
			Category: domain.INFLAMMATION,
			References: []domain.ReferenceRange{
				{Max: domain.Float(5)},
			},
			WhatIs:       "Proteína produzida pelo fígado em resposta a inflamação.",
			WhatFor:      "Marcador geral de inflamação ou infeção.",
			HighMeaning:  "Indica inflamação ativa, infeção, doença autoimune ou risco cardiovascular elevado.",
			LowMeaning:   "Ausência de inflamação significativa.",
			CommonCauses: []string{"Infeção", "Doenças autoimunes", "Inflamação crónica", "Risco cardiovascular"},
		},
		{
			Name:     "VS",
			Aliases:  []string{"Velocidade de Sedimentação", "ESR", "VHS"},
			Unit:     "mm/h",
			Category: domain.INFLAMMATION,
			References: []domain.ReferenceRange{
				{Max: domain.Float(15), Sex: domain.MALE},
				{Max: domain.Float(20), Sex: domain.FEMALE},
			},
			WhatIs:       "Velocidade com que os glóbulos vermelhos se depositam num tubo.",
			WhatFor:      "Marcador inespecífico de inflamação.",
			HighMeaning:  "Indica inflamação, infeção, anemia ou doenças autoimunes.",
			LowMeaning:   "Ausência de inflamação.",
			CommonCauses: []string{"Infeção", "Doenças autoimunes", "Anemia", "Cancro"},
		},

		// Electrolytes
		{
			Name:     "Sódio",
			Aliases:  []string{"Na", "Natrémia", "Natremio"},
			Unit:     "mmol/L",
			Category: domain.ELECTROLYTES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(132), Max: domain.Float(146)},
			},
			WhatIs:       "Principal eletrólito extracelular, regula volume de líquidos.",
			WhatFor:      "Avalia equilíbrio hídrico e função renal.",
			HighMeaning:  "Desidratação, diabetes insípida ou excesso de sal.",
			LowMeaning:   "Excesso de hidratação, insuficiência cardíaca ou renal, diuréticos.",
			CommonCauses: []string{"Desidratação", "Excesso de hidratação", "Diuréticos", "Diarreia", "Vómitos"},
		},
		{
			Name:     "Potássio",
			Aliases:  []string{"K", "Kaliémia", "Kaliemia"},
			Unit:     "mmol/L",
			Category: domain.ELECTROLYTES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(3.5), Max: domain.Float(5.5)},
			},
			WhatIs:       "Eletrólito essencial para função cardíaca e muscular.",
			WhatFor:      "Avalia função renal e risco de arritmias.",
			HighMeaning:  "Pode causar arritmias graves, geralmente por insuficiência renal ou medicamentos.",
			LowMeaning:   "Pode causar fraqueza muscular, cãibras e arritmias, geralmente por diuréticos ou diarreia.",
			CommonCauses: []string{"Insuficiência renal", "Diuréticos", "Diarreia", "Vómitos", "Medicamentos"},
		},
		{
			Name:     "Cloro",
			Aliases:  []string{"Cl", "Clorémia", "Cloremia"},
			Unit:     "mmol/L",
			Category: domain.ELECTROLYTES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(99), Max: domain.Float(109)},
			},
			WhatIs:       "Eletrólito que acompanha o sódio.",
			WhatFor:      "Avalia equilíbrio ácido-base e hidratação.",
			HighMeaning:  "Desidratação, acidose ou problemas renais.",
			LowMeaning:   "Vómitos, alcalose ou excesso de hidratação.",
			CommonCauses: []string{"Desidratação", "Vómitos", "Diarreia", "Problemas renais"},
		},
		{
			Name:     "Cálcio",
			Aliases:  []string{"Ca", "Calcemia", "Cálcio sérico"},
			Unit:     "mg/dL",
			Category: domain.ELECTROLYTES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(8.5), Max: domain.Float(10.5)},
			},
			WhatIs:       "Mineral essencial para ossos, músculos e nervos.",
			WhatFor:      "Avalia saúde óssea, paratiroide e risco de arritmias.",
			HighMeaning:  "Pode indicar hiperparatiroidismo, cancro ou excesso de vitamina D.",
			LowMeaning:   "Pode indicar deficiência de vitamina D, hipoparatiroidismo ou má absorção.",
			CommonCauses: []string{"Hiperparatiroidismo", "Deficiência de vitamina D", "Cancro", "Má absorção"},
		},
		{
			Name:     "Magnésio",
			Aliases:  []string{"Mg", "Magnesemia", "Magnésio sérico"},
			Unit:     "mg/dL",
			Category: domain.ELECTROLYTES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(1.7), Max: domain.Float(2.4)},
			},
			WhatIs:       "Mineral importante para músculos, nervos e coração.",
			WhatFor:      "Avalia função muscular e cardíaca.",
			HighMeaning:  "Raro, pode ocorrer com insuficiência renal ou excesso de suplementação.",
			LowMeaning:   "Pode causar cãibras, arritmias e fadiga, comum com diuréticos ou má absorção.",
			CommonCauses: []string{"Diuréticos", "Má absorção", "Alcoolismo", "Diarreia crónica"},
		},

		// Hormones
		{
			Name:     "Testosterona",
			Aliases:  []string{"Testosterona Total", "Testosterone"},
			Unit:     "ng/dL",
			Category: domain.HORMONES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(300), Max: domain.Float(1000), Sex: domain.MALE},
				{Min: domain.Float(15), Max: domain.Float(70), Sex: domain.FEMALE},
			},
			WhatIs:       "Principal hormona sexual masculina.",
			WhatFor:      "Avalia função sexual, massa muscular e energia.",
			HighMeaning:  "Nas mulheres pode indicar síndrome dos ovários policísticos.",
			LowMeaning:   "Nos homens pode causar fadiga, perda de massa muscular e libido reduzida.",
			CommonCauses: []string{"Hipogonadismo", "Idade", "Obesidade", "SOP (mulheres)"},
		},
		{
			Name:     "Cortisol",
			Aliases:  []string{"Cortisol sérico"},
			Unit:     "µg/dL",
			Category: domain.HORMONES,
			References: []domain.ReferenceRange{
				{Min: domain.Float(5), Max: domain.Float(25)},
			},
			WhatIs:       "Hormona do stress produzida pelas glândulas suprarrenais.",
			WhatFor:      "Avalia função das suprarrenais e resposta ao stress.",
			HighMeaning:  "Pode indicar síndrome de Cushing, stress crónico ou medicamentos.",
			LowMeaning:   "Pode indicar insuficiência adrenal (doença de Addison).",
			CommonCauses: []string{"Síndrome de Cushing", "Stress", "Insuficiência adrenal", "Medicamentos"},
		},
		{
			Name:     "PSA",
			Aliases:  []string{"Antigénio Específico da Próstata", "PSA Total"},
			Unit:     "ng/mL",
			Category: domain.HORMONES,
			References: []domain.ReferenceRange{
				{Max: domain.Float(4), Sex: domain.MALE},
			},
			WhatIs:       "Proteína produzida pela próstata.",
			WhatFor:      "Rastreio de cancro da próstata e doenças prostáticas.",
			HighMeaning:  "Pode indicar cancro da próstata, hiperplasia benigna ou prostatite.",
			LowMeaning:   "Geralmente bom sinal.",
			CommonCauses: []string{"Cancro da próstata", "Hiperplasia benigna", "Prostatite", "Idade"},
		},
	}
}
