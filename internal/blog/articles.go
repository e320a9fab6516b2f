package blog

// Built-in catalogue. Newest first.
var articles = []Article{
	{
		Summary: Summary{
			Slug:       "reserva-de-emergencia",
			Titulo:     "Como Construir sua Reserva de Emergência do Zero",
			Resumo:     "Aprenda a criar uma reserva de emergência sólida que protegerá suas finanças em momentos de crise. Descubra quanto guardar, onde investir e como manter a disciplina.",
			Tags:       []string{"Iniciante", "Reserva de Emergência", "Educação Financeira"},
			Data:       "10/01/2026",
			ImagemCapa: "https://images.unsplash.com/photo-1579621970563-ebec7560ff3e?w=1200&h=600&fit=crop",
		},
		Conteudo: `# Como Construir sua Reserva de Emergência do Zero

A reserva de emergência é a **base de qualquer planejamento financeiro sólido**. Ela funciona como um colchão de segurança para imprevistos como perda de emprego, despesas médicas urgentes ou reparos inesperados.

## Quanto guardar?

A regra geral recomenda **de 6 a 12 meses das suas despesas mensais**:

- **6 meses**: emprego estável (CLT) ou múltiplas fontes de renda.
- **12 meses**: autônomos, renda variável ou dependentes.
- **3 meses**: meta inicial para quem está começando do zero.

## Onde investir a reserva?

O objetivo não é rentabilidade, mas **liquidez imediata** e **segurança total**:

1. **Tesouro Selic**: liquidez D+0, rentabilidade próxima da Selic.
2. **CDB com liquidez diária**: prefira bancos com cobertura do FGC.
3. **Conta remunerada**: saque instantâneo, ~100% do CDI.

Evite ações, fundos imobiliários e CDBs sem liquidez.

## Passo a passo

1. Calcule suas despesas reais por 3 meses.
2. Defina a meta inicial de 3 meses de despesas.
3. Automatize os aportes no dia do salário.
4. Nunca toque, a menos que seja REALMENTE emergência.

Comece hoje, mesmo que seja com R$ 100. O importante é dar o primeiro passo!
`,
	},
	{
		Summary: Summary{
			Slug:       "juros-compostos-magia",
			Titulo:     "A Mágica dos Juros Compostos: Como Transformar R$ 100 em Milhões",
			Resumo:     "Entenda por que Einstein chamou os juros compostos de 'oitava maravilha do mundo' e como você pode usar esse poder a seu favor para construir riqueza a longo prazo.",
			Tags:       []string{"Investimentos", "Iniciante", "Juros Compostos"},
			Data:       "08/01/2026",
			ImagemCapa: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?w=1200&h=600&fit=crop",
		},
		Conteudo: `# A Mágica dos Juros Compostos

Albert Einstein teria dito que os juros compostos são *"a força mais poderosa do universo"*. E ele estava absolutamente certo.

## Juros simples vs. juros compostos

Nos juros simples, o rendimento incide apenas sobre o capital inicial. Nos compostos, incide sobre o capital **mais os juros acumulados**: juros sobre juros.

## O poder do tempo

R$ 500 por mês a 10% ao ano:

- 10 anos: ~R$ 102 mil (investido: R$ 60 mil)
- 20 anos: ~R$ 380 mil (investido: R$ 120 mil)
- 30 anos: ~R$ 1,13 milhão (investido: R$ 180 mil)

Quanto mais cedo você começa, mais o tempo trabalha a seu favor.

## Regra dos 72

Quer saber em quanto tempo seu dinheiro dobra? Divida 72 pela taxa anual. A 12% ao ano, o capital dobra a cada 6 anos.

## Como aproveitar

1. Comece agora, com qualquer valor.
2. Seja constante nos aportes.
3. Reinvista os rendimentos.
4. Aumente os aportes com o tempo.

Use o simulador de juros compostos para projetar os seus números.
`,
	},
	{
		Summary: Summary{
			Slug:       "tesouro-direto-guia-completo",
			Titulo:     "Tesouro Direto: O Guia Definitivo para Iniciantes",
			Resumo:     "Tudo que você precisa saber para começar a investir no Tesouro Direto: tipos de títulos, como escolher, taxas, impostos e estratégias para cada objetivo.",
			Tags:       []string{"Investimentos", "Tesouro Direto", "Renda Fixa"},
			Data:       "05/01/2026",
			ImagemCapa: "https://images.unsplash.com/photo-1559526324-4b87b5e36e44?w=1200&h=600&fit=crop",
		},
		Conteudo: `# Tesouro Direto: O Guia Definitivo

O Tesouro Direto é o programa do governo federal para venda de títulos públicos a pessoas físicas. É considerado o investimento mais seguro do país.

## Tipos de títulos

- **Tesouro Selic**: pós-fixado, acompanha a taxa básica. Ideal para reserva de emergência.
- **Tesouro Prefixado**: taxa contratada no momento da compra. Bom quando a Selic deve cair.
- **Tesouro IPCA+**: inflação mais uma taxa fixa. Protege o poder de compra no longo prazo.

## Custos e impostos

- Taxa de custódia da B3: 0,20% ao ano (isenta para até R$ 10 mil em Tesouro Selic).
- Imposto de renda regressivo: de 22,5% (até 180 dias) a 15% (acima de 720 dias), sobre o rendimento.

## Como começar

1. Abra conta em uma corretora sem taxa de agente.
2. Transfira o valor que deseja investir.
3. Escolha o título conforme o objetivo e o prazo.
4. Configure aportes recorrentes para aproveitar a média de preços ao longo do tempo.

Títulos vendidos antes do vencimento são marcados a mercado e podem ter perda nominal. Para quem leva até o vencimento, a taxa contratada é garantida.
`,
	},
}
