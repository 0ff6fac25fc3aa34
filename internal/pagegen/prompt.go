// Package pagegen turns a worksheet form into one activity page
// structure per LLM call: it builds the generation prompt, requests
// structured JSON, and repairs the reply into a valid page.
package pagegen

import (
	"fmt"
	"strings"

	"github.com/smartcriacao/atividade/internal/activity"
)

// pedagogicalGuidance maps each supported age to the instructional
// guidance embedded in the generation prompt.
var pedagogicalGuidance = map[activity.Age]string{
	activity.AgeCinco:   "Habilidades: Pré-alfabetização, reconhecimento de cores, formas, números até 10. Cuidados: A maioria ainda não lê. Foque em: Atividades visuais e lúdicas (recortar, colar, colorir). Ligação entre imagem e palavra. Jogos simples (ligue os pontos, tracejado, formas geométricas).",
	activity.AgeSeis:    "Habilidades: Início da alfabetização, contagem, coordenação motora. Cuidados: Incluir atividades com sílabas, vogais, letras. Atividades com traçado de palavras simples. Introdução de noções básicas de adição.",
	activity.AgeSete:    "Habilidades: Alfabetização em andamento, leitura de frases curtas. Cuidados: Textos com frases simples e claras. Exercícios de completar palavras, caça-palavras básico. Operações de soma e subtração.",
	activity.AgeOito:    "Habilidades: Leitura e escrita mais fluente, compreensão de pequenos textos. Cuidados: Atividades com interpretação de texto curto. Introdução a multiplicação. Perguntas com alternativas (marcar X).",
	activity.AgeNove:    "Habilidades: Autonomia para leitura, resolução de problemas simples. Cuidados: Questões de múltipla escolha com mais complexidade. Operações matemáticas com mais etapas. Textos com perguntas abertas e de interpretação.",
	activity.AgeDez:     "Habilidades: Compreensão textual mais profunda, início de pensamento lógico. Cuidados: Redações curtas. Questões com 'complete', 'responda com suas palavras'. Introdução a frações e problemas matemáticos contextualizados.",
	activity.AgeOnze:    "Habilidades: Argumentação inicial, pensamento crítico em formação. Cuidados: Atividades de análise (ex: 'o que você entendeu?', 'qual a intenção do autor?'). Interpretação de gráficos e tabelas. Exercícios de gramática contextualizados.",
	activity.AgeDoze:    "Habilidades: Capacidade de abstração mais sólida. Cuidados: Debates, temas sociais simples. Produção de textos com introdução, desenvolvimento e conclusão. Problemas matemáticos envolvendo porcentagem e proporção.",
	activity.AgeTreze:   "Habilidades: Maior maturidade de leitura e escrita, argumentação mais forte. Cuidados: Textos reflexivos com perguntas críticas. Interpretação de poemas e textos literários. Matemática: equações simples e geometria.",
	activity.AgeCatorze: "Habilidades: Capacidade de análise, síntese e comparação. Cuidados: Questões de inferência e interpretação subjetiva. Produções textuais argumentativas. Matemática: expressões algébricas, gráficos.",
	activity.AgeQuinze:  "Habilidades: Autonomia total em leitura e resolução de problemas complexos. Cuidados: Desafios interdisciplinares. Discussões filosóficas, sociais, históricas. Questões que exigem raciocínio crítico e comparações entre temas.",
}

const genericGuidance = "Adapte o conteúdo para a idade e desenvolvimento do aluno."

// GuidanceFor returns the pedagogical guidance for an age, falling
// back to generic advice for unrecognized values.
func GuidanceFor(age activity.Age) string {
	if g, ok := pedagogicalGuidance[age]; ok {
		return g
	}
	return genericGuidance
}

// BuildPrompt assembles the page-structure generation prompt for one
// page. Pure; does not validate the form.
func BuildPrompt(form activity.FormData, cfg activity.PageConfig, pageNumber, totalPages int) string {
	subject := cfg.Subject
	topic := form.SpecificTopic
	topicOrSubject := topic
	if topicOrSubject == "" {
		topicOrSubject = string(subject)
	}
	topicLabel := topic
	if topicLabel == "" {
		topicLabel = "Geral da matéria"
	}
	titleTopic := topic
	if titleTopic == "" {
		titleTopic = "tópico geral"
	}

	components := make([]string, len(form.Components))
	for i, c := range form.Components {
		components[i] = string(c)
	}
	componentList := strings.Join(components, ", ")

	var b strings.Builder

	fmt.Fprintf(&b, `Você é um especialista em design instrucional e criação de material didático.
Sua tarefa é gerar a estrutura de UMA ÚNICA página de atividade escolar em formato JSON.

Especificações da Atividade:
- Idade do Aluno: %s
- Ano Escolar: %s
- Matéria Principal da Página: %s
- Tópico Específico (se houver): %s
- Página Atual: %d de %d
- Componentes de Atividade Solicitados pelo Usuário (para toda a atividade): %s

**Orientações Pedagógicas Específicas para %s:**
%s

`, form.Age, form.SchoolYear, subject, topicLabel, pageNumber, totalPages, componentList, form.Age, GuidanceFor(form.Age))

	fmt.Fprintf(&b, `Para esta página (Página %d de %d), sua tarefa é criar UMA ÚNICA seção de atividade.
Selecione UM tipo de atividade para esta seção a partir da lista de componentes solicitados pelo usuário para toda a atividade: [%s].
Se possível, escolha um componente da lista que ainda não foi usado nas páginas anteriores (se houver páginas anteriores).
A ÚNICA seção da página deve ser substancial e preencher bem uma página A4, considerando o conteúdo e a idade '%s'.
Se a matéria principal da página for "%s" ou "%s", este DEVE ser o tipo de componente selecionado para a única seção da página.

`, pageNumber, totalPages, componentList, form.Age, activity.SubjectColorir, activity.SubjectRecortar)

	fmt.Fprintf(&b, `Estrutura JSON de Saída Esperada (siga este formato RIGOROSAMENTE):
{
  "pageNumber": %d,
  "subject": "%s",
  "pageTitle": "Um título criativo e relevante para a página sobre %s e %s",
  "sections": [
    {
      "id": "section-id-aleatorio-1",
      "type": "Tipo da seção escolhido (ex: '%s')",
      "title": "Título da Seção",
      "textContent": "Conteúdo textual relevante para o tipo de seção. Para Caça-Palavras, lista de palavras aqui.",
      "questions": [
        {
          "id": "q-id-1",
          "text": "Texto da pergunta ou afirmação?",
          "answerLines": 2,
          "options": ["Opção A", "Opção B"],
          "answerKey": "Opção A"
        }
      ],
      "options": [],
      "answerKey": null,
      "imagePrompt": "Se for uma seção com imagem, prompt DETALHADO em INGLÊS para gerar uma imagem educacional. O prompt DEVE EXPLICITAMENTE INCLUIR '16:9 aspect ratio' e 'ABSOLUTELY NO overlaid text, letters, words, or symbols.' Se não precisar de imagem, omita ou null.",
      "wordSearchGridData": null
    }
  ]
}

`, pageNumber, subject, subject, titleTopic, activity.SectionTextoPerguntas)

	b.WriteString(componentInstructions(topicOrSubject, form.Age))

	fmt.Fprintf(&b, `
Importante:
- O array "sections" DEVE conter exatamente UM objeto de seção.
- A seção ÚNICA deve ser substancial e bem desenvolvida, visando preencher a maior parte de uma página A4.
- Adapte todo o conteúdo para a idade ("%s") e ano escolar ("%s"), seguindo as Orientações Pedagógicas.
- Gere IDs únicos para cada seção e cada pergunta.
- Seções de imagem DEVEM ter 'imagePrompt' seguindo as diretrizes (16:9, sem texto sobreposto).
- Para '%s', o campo 'wordSearchGridData' é OBRIGATÓRIO e deve seguir o formato e as INSTRUÇÕES DETALHADAS PARA A GRADE DO CAÇA-PALAVRAS, especialmente as REGRAS (1, 2, 3, 4) e a REVISÃO FINAL CRÍTICA. 'textContent' deve ser a lista de palavras. LEMBRE-SE: A REGRA 2 (TODAS AS LINHAS COM O MESMO COMPRIMENTO) É ABSOLUTAMENTE CRUCIAL E INFLEXÍVEL.
- Para '%s', cada pergunta em 'questions' deve ter seu próprio array 'options'.
- Gere APENAS o objeto JSON. Não inclua texto explicativo, comentários ou markdown antes ou depois do JSON.
`, form.Age, form.SchoolYear, activity.SectionCacaPalavras, activity.SectionMultiplaEscolha)

	return b.String()
}

// componentInstructions writes the per-type structural contract. The
// word-search grid rules are deliberately repetitive: the uniform row
// length requirement is the failure mode models hit most.
func componentInstructions(topicOrSubject string, age activity.Age) string {
	var b strings.Builder

	b.WriteString(`Instruções Detalhadas para Tipos de Seção (type) - FOCO EM CONTEÚDO SUBSTANCIAL PARA PREENCHER A PÁGINA:
CRÍTICO PARA TODAS AS IMAGENS: Todas as imagens solicitadas via 'imagePrompt' DEVEM ser geradas estritamente com '16:9 aspect ratio' para melhor encaixe em layouts de página A4 e para evitar que fiquem muito altas. Elas também devem ter 'ABSOLUTELY NO overlaid text, letters, words, or symbols'.
`)

	fmt.Fprintf(&b, `- "%s": Crie UMA seção com "type": "%s", "title" apropriado (ex: "Pinte o Dinossauro Amigável"), e um "imagePrompt" grande e detalhado para uma imagem de colorir rica em detalhes ou uma cena completa sobre o tópico %s. O "imagePrompt" DEVE seguir as regras críticas para todas as imagens (16:9, sem texto sobreposto). "textContent" pode ser uma breve instrução como "Use suas cores favoritas para dar vida a este desenho!". Esta DEVE ser a única seção na página.
`, activity.SubjectColorir, activity.SubjectColorir, topicOrSubject)

	fmt.Fprintf(&b, `- "%s": Crie UMA seção com "type": "%s", "title" (ex: "Recorte as Formas Geométricas"), e um "imagePrompt" para múltiplos elementos ou uma cena com linhas tracejadas claras para recortar, sobre o tópico %s. O "imagePrompt" DEVE seguir as regras críticas para todas as imagens (16:9, sem texto sobreposto). "textContent" pode ser uma breve instrução. Esta DEVE ser a única seção na página.
`, activity.SubjectRecortar, activity.SubjectRecortar, topicOrSubject)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Instrução principal clara e tema (ex: "Caça-Palavras: Animais da Fazenda").
    - "textContent": Deve listar um número SUBSTANCIAL de palavras a serem encontradas (ex: 10-15 palavras, dependendo da idade), separadas por vírgula ou em linhas.
    - "wordSearchGridData": CRÍTICO - DEVE ser uma STRING JSON válida, representando um array de strings (as linhas da grade).
    INSTRUÇÕES EXTREMAMENTE IMPORTANTES PARA A GRADE 'wordSearchGridData':

    REGRA 1: SEM ESPAÇOS NAS LINHAS
        - CADA string (linha) na grade DEVE ser uma sequência CONTÍNUA de letras MAIÚSCULAS.
        - **NÃO PODE HAVER NENHUM caractere de ESPAÇO (' ') dentro de NENHUMA string de linha.**
        - Letras acentuadas (Á, É, Ç) são permitidas APENAS se fizerem parte das palavras escondidas.

    REGRA 2: TODAS AS LINHAS COM O MESMO COMPRIMENTO (ABSOLUTAMENTE CRÍTICO!)
        1.  DECIDA O NÚMERO DE COLUNAS: Para ocupar bem a largura de uma página A4, a grade deve ter entre 22 a 26 colunas. Para uma proporção mais retangular, o número de linhas deve ser entre 14 a 18 linhas. Ajuste o número de colunas (dentro da faixa de 22-26) e o número de linhas (dentro da faixa de 14-18) conforme a idade "%s" e a complexidade das palavras, mas mantenha a grade predominantemente mais larga do que alta dentro dessas faixas. Seja qual for o número de colunas escolhido, este será o comprimento EXATO de TODAS as linhas.
        2.  COMPRIMENTO UNIFORME OBRIGATÓRIO E INFLEXÍVEL: TODAS as strings (linhas) no array 'wordSearchGridData' DEVEM ter EXATAMENTE o mesmo número de caracteres (o número de colunas decidido no passo 1). NENHUMA VARIAÇÃO DE COMPRIMENTO É PERMITIDA. ISTO É VITAL PARA A RENDERIZAÇÃO CORRETA.
            -   **VERIFICAÇÃO FINAL CRÍTICA ANTES DE GERAR O JSON:** Para CADA linha, conte os caracteres. CONFIRME que TODAS as linhas têm a MESMA contagem. Se uma linha for diferente, VOCÊ DEVE CORRIGI-LA IMEDIATAMENTE ANTES DE FINALIZAR O JSON. UMA ÚNICA FALHA AQUI INVALIDA A GRADE E QUEBRA A EXIBIÇÃO.

    REGRA 3: PREENCHIMENTO COMPLETO E ALEATÓRIO
        - TODAS as células da grade DEVEM ser preenchidas. Nenhuma célula pode ficar vazia.
        - As células que não fazem parte das palavras escondidas DEVEM ser preenchidas com letras MAIÚSCULAS ALEATÓRIAS (A-Z, sem acentos para o preenchimento). O preenchimento NÃO PODE formar padrões óbvios.

    REGRA 4: ESCONDER PALAVRAS (HORIZONTAL LTR E VERTICAL TTB APENAS)
        - Palavras de "textContent" DEVEM estar na grade.
        - Direções: APENAS Horizontal (esquerda para direita) e Vertical (cima para baixo).
        - **NÃO use palavras invertidas. NÃO use diagonais.**
        - Distribua as palavras de forma variada pela grade.

`, activity.SectionCacaPalavras, activity.SectionCacaPalavras, age)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título para a seção.
    - "textContent": Um texto base para leitura de tamanho adequado para preencher boa parte da página, considerando a idade.
    - "questions": Array de 4 a 6 objetos de pergunta (ou mais, se as perguntas forem curtas), cada um com "id", "text", e "answerLines" (1-3).
`, activity.SectionTextoPerguntas, activity.SectionTextoPerguntas)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título relacionado à imagem.
    - "imagePrompt": Prompt DETALHADO (regras 16:9, sem texto sobreposto).
    - "questions": Array de 4 a 6 objetos de pergunta sobre a imagem, cada um com "id", "text", e "answerLines".
`, activity.SectionImagemPerguntas, activity.SectionImagemPerguntas)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título combinando imagem e texto.
    - "imagePrompt": Como em "Imagem com perguntas" (regras 16:9, sem texto sobreposto).
    - "textContent": Texto complementar curto.
    - "questions": Array de 4 a 6 objetos de pergunta, cada um com "id", "text", e "answerLines".
`, activity.SectionImagemTextoPerguntas, activity.SectionImagemTextoPerguntas)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título.
    - "textContent": Opcional, instrução ou contexto.
    - "questions": Array de 5 a 8 objetos de pergunta. Cada pergunta DEVE ter "id", "text", "options" (3-4 alternativas), e opcionalmente "answerKey".
`, activity.SectionMultiplaEscolha, activity.SectionMultiplaEscolha)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título.
    - "textContent": Opcional, instrução.
    - "questions": Array de 6 a 10 objetos de pergunta (afirmações). Cada pergunta deve ter "id", "text", e opcionalmente "answerKey".
`, activity.SectionVerdadeiroFalso, activity.SectionVerdadeiroFalso)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título.
    - "textContent": Um parágrafo ou várias frases com múltiplas lacunas (ex: 5-8 lacunas), indicadas por "___" ou "[LACUNA]".
    - "answerKey": (Opcional) Array com as palavras corretas.
`, activity.SectionCompleteLacunas, activity.SectionCompleteLacunas)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título.
    - "textContent": Instruções e as duas colunas com 5 a 7 pares para associar.
    - "answerKey": (Opcional) Array com as associações corretas.
`, activity.SectionAssocieColunas, activity.SectionAssocieColunas)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título.
    - "textContent": Instruções.
    - "options": Array com 5 a 7 frases ou eventos para ordenar.
    - "answerKey": (Opcional) Array com os itens na ordem correta.
`, activity.SectionOrdenarFrases, activity.SectionOrdenarFrases)

	fmt.Fprintf(&b, `- "%s":
    - "type": "%s".
    - "title": Título para o texto informativo.
    - "textContent": Conteúdo textual informativo substancial para a página.
`, activity.SectionTextoGeral, activity.SectionTextoGeral)

	return b.String()
}
