// Package activity defines the worksheet domain model: the form a user
// fills in, the page structures the LLM produces, and the generated
// pages that make up a finished worksheet.
//
// All user-facing enum values are Brazilian Portuguese strings; they are
// the wire values sent to and received from the text-generation service.
package activity

// Age is the student age band.
type Age string

const (
	AgeCinco   Age = "5 anos"
	AgeSeis    Age = "6 anos"
	AgeSete    Age = "7 anos"
	AgeOito    Age = "8 anos"
	AgeNove    Age = "9 anos"
	AgeDez     Age = "10 anos"
	AgeOnze    Age = "11 anos"
	AgeDoze    Age = "12 anos"
	AgeTreze   Age = "13 anos"
	AgeCatorze Age = "14 anos"
	AgeQuinze  Age = "15 anos"
)

// Ages lists every age band in ascending order.
var Ages = []Age{
	AgeCinco, AgeSeis, AgeSete, AgeOito, AgeNove, AgeDez,
	AgeOnze, AgeDoze, AgeTreze, AgeCatorze, AgeQuinze,
}

// SchoolYear is the student's school year.
type SchoolYear string

const (
	YearNaoEstuda SchoolYear = "Não está na escola"
	YearInfantil  SchoolYear = "Ensino infantil"
	YearPrimeiro  SchoolYear = "1º ano"
	YearSegundo   SchoolYear = "2º ano"
	YearTerceiro  SchoolYear = "3º ano"
	YearQuarto    SchoolYear = "4º ano"
	YearQuinto    SchoolYear = "5º ano"
	YearSexto     SchoolYear = "6º ano"
	YearSetimo    SchoolYear = "7º ano"
	YearOitavo    SchoolYear = "8º ano"
)

// SchoolYears lists every school year option.
var SchoolYears = []SchoolYear{
	YearNaoEstuda, YearInfantil, YearPrimeiro, YearSegundo, YearTerceiro,
	YearQuarto, YearQuinto, YearSexto, YearSetimo, YearOitavo,
}

// Subject is the main subject of one worksheet page.
type Subject string

const (
	SubjectColorir       Subject = "Para Colorir"
	SubjectPortugues     Subject = "Português"
	SubjectMatematica    Subject = "Matemática"
	SubjectHistoria      Subject = "História"
	SubjectGeografia     Subject = "Geografia"
	SubjectCiencias      Subject = "Ciências"
	SubjectFilosofia     Subject = "Filosofia"
	SubjectSociologia    Subject = "Sociologia"
	SubjectArtes         Subject = "Artes"
	SubjectCaligrafia    Subject = "Caligrafia"
	SubjectIngles        Subject = "Inglês"
	SubjectEspanhol      Subject = "Espanhol"
	SubjectAlfabetizacao Subject = "Alfabetização"
	SubjectLudica        Subject = "Lúdica"
	SubjectRecortar      Subject = "Para Recortar"
	SubjectTecnologia    Subject = "Tecnologia"
	SubjectEducFisica    Subject = "Educação Física"
	SubjectCidadania     Subject = "Cidadania"
	SubjectMeioAmbiente  Subject = "Meio Ambiente"
	SubjectValoresEtica  Subject = "Valores e Ética"
)

// Subjects lists every selectable subject.
var Subjects = []Subject{
	SubjectColorir, SubjectPortugues, SubjectMatematica, SubjectHistoria,
	SubjectGeografia, SubjectCiencias, SubjectFilosofia, SubjectSociologia,
	SubjectArtes, SubjectCaligrafia, SubjectIngles, SubjectEspanhol,
	SubjectAlfabetizacao, SubjectLudica, SubjectRecortar, SubjectTecnologia,
	SubjectEducFisica, SubjectCidadania, SubjectMeioAmbiente, SubjectValoresEtica,
}

// IsVisualOnly reports whether the subject admits only its matching
// visual section type (coloring or cutting pages).
func (s Subject) IsVisualOnly() bool {
	return s == SubjectColorir || s == SubjectRecortar
}

// ComponentType is an exercise kind the user may request for the
// worksheet as a whole.
type ComponentType string

const (
	ComponentImagemTextoPerguntas ComponentType = "Imagem + Texto com perguntas"
	ComponentTextoPerguntas       ComponentType = "Texto com perguntas"
	ComponentImagemPerguntas      ComponentType = "Imagem com perguntas"
	ComponentMultiplaEscolha      ComponentType = "Múltipla escolha"
	ComponentVerdadeiroFalso      ComponentType = "Verdadeiro ou falso"
	ComponentCacaPalavras         ComponentType = "Caça-palavras"
	ComponentCompleteLacunas      ComponentType = "Complete as lacunas"
	ComponentAssocieColunas       ComponentType = "Associe as colunas"
	ComponentOrdenarFrases        ComponentType = "Ordenar frases/eventos"
)

// ComponentTypes lists every requestable component.
var ComponentTypes = []ComponentType{
	ComponentImagemTextoPerguntas, ComponentTextoPerguntas,
	ComponentImagemPerguntas, ComponentMultiplaEscolha,
	ComponentVerdadeiroFalso, ComponentCacaPalavras,
	ComponentCompleteLacunas, ComponentAssocieColunas,
	ComponentOrdenarFrases,
}

// SectionType is the closed set of section kinds a generated page can
// carry. It is the component set plus the two visual-only subject types
// and the generic-text fallback.
type SectionType string

const (
	SectionColorir              SectionType = SectionType(SubjectColorir)
	SectionRecortar             SectionType = SectionType(SubjectRecortar)
	SectionImagemTextoPerguntas SectionType = SectionType(ComponentImagemTextoPerguntas)
	SectionTextoPerguntas       SectionType = SectionType(ComponentTextoPerguntas)
	SectionImagemPerguntas      SectionType = SectionType(ComponentImagemPerguntas)
	SectionMultiplaEscolha      SectionType = SectionType(ComponentMultiplaEscolha)
	SectionVerdadeiroFalso      SectionType = SectionType(ComponentVerdadeiroFalso)
	SectionCacaPalavras         SectionType = SectionType(ComponentCacaPalavras)
	SectionCompleteLacunas      SectionType = SectionType(ComponentCompleteLacunas)
	SectionAssocieColunas       SectionType = SectionType(ComponentAssocieColunas)
	SectionOrdenarFrases        SectionType = SectionType(ComponentOrdenarFrases)
	SectionTextoGeral           SectionType = "Texto Geral"
)

// SectionTypes lists every recognized section type.
var SectionTypes = []SectionType{
	SectionColorir, SectionRecortar, SectionImagemTextoPerguntas,
	SectionTextoPerguntas, SectionImagemPerguntas, SectionMultiplaEscolha,
	SectionVerdadeiroFalso, SectionCacaPalavras, SectionCompleteLacunas,
	SectionAssocieColunas, SectionOrdenarFrases, SectionTextoGeral,
}

// Known reports whether t is one of the recognized section types.
// Unknown types are rendered with the generic text+questions rule.
func (t SectionType) Known() bool {
	for _, k := range SectionTypes {
		if t == k {
			return true
		}
	}
	return false
}

// HasAnswerLines reports whether questions of this section type draw
// blank answer lines. Multiple choice and true/false never do.
func (t SectionType) HasAnswerLines() bool {
	return t != SectionMultiplaEscolha && t != SectionVerdadeiroFalso
}

// PageConfig is the per-page slice of the form: one chosen subject.
type PageConfig struct {
	ID      string  `json:"id"`
	Subject Subject `json:"subject"`
}

// FormData is the complete worksheet request as submitted by the user.
// It is read-only once generation starts.
type FormData struct {
	Age           Age             `json:"age"`
	SchoolYear    SchoolYear      `json:"schoolYear"`
	NumPages      int             `json:"numPages"`
	PageConfigs   []PageConfig    `json:"pageConfigs"`
	Components    []ComponentType `json:"activityComponents"`
	SpecificTopic string          `json:"specificTopic"`
}

// Question is one structured question inside a section.
type Question struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	AnswerLines int      `json:"answerLines,omitempty"`
	Options     []string `json:"options,omitempty"`
	AnswerKey   string   `json:"answerKey,omitempty"`
}

// Section is the single structured content block of a page. Fields are
// populated according to Type; absent fields stay zero.
type Section struct {
	ID          string      `json:"id"`
	Type        SectionType `json:"type"`
	Title       string      `json:"title,omitempty"`
	TextContent string      `json:"textContent,omitempty"`
	Questions   []Question  `json:"questions,omitempty"`
	Options     []string    `json:"options,omitempty"`
	AnswerKey   []string    `json:"answerKey,omitempty"`
	ImagePrompt string      `json:"imagePrompt,omitempty"`

	// GeneratedImageID references a GeneratedImage owned by the page.
	// The image payload is never duplicated into the section.
	GeneratedImageID string `json:"generatedImageId,omitempty"`

	// WordSearchGrid holds the repaired word-search rows, one string per
	// row, all the same length, uppercase, no whitespace. Empty when the
	// section is not a word search or the grid could not be repaired.
	WordSearchGrid []string `json:"wordSearchGrid,omitempty"`
}

// PageStructure is the AI-produced content of one page. The Sections
// slice always holds exactly one entry once it has passed through
// pagegen.Parse; the slice form survives only because it mirrors the
// service's reply shape.
type PageStructure struct {
	PageNumber int       `json:"pageNumber"`
	Subject    Subject   `json:"subject"`
	PageTitle  string    `json:"pageTitle,omitempty"`
	Sections   []Section `json:"sections"`
}

// Section returns the page's single section, or nil when the structure
// has not been normalized yet.
func (p *PageStructure) Section() *Section {
	if len(p.Sections) == 0 {
		return nil
	}
	return &p.Sections[0]
}

// GeneratedImage is one illustration produced for a page.
type GeneratedImage struct {
	ID         string `json:"id"`
	Base64Data string `json:"base64Data"`
	PromptUsed string `json:"promptUsed,omitempty"`
}

// GeneratedPage is one finished worksheet page: its structure plus any
// images generated for it. Write-once; rendering and export only read.
type GeneratedPage struct {
	ID         string           `json:"id"`
	PageNumber int              `json:"pageNumber"`
	Structure  PageStructure    `json:"structure"`
	Images     []GeneratedImage `json:"images"`
}

// ImageByID returns the page image with the given ID, or nil.
func (p *GeneratedPage) ImageByID(id string) *GeneratedImage {
	if id == "" {
		return nil
	}
	for i := range p.Images {
		if p.Images[i].ID == id {
			return &p.Images[i]
		}
	}
	return nil
}
