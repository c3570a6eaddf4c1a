package report

const summaryTemplate = `Debt payoff plan
Prepared by:	{{.User}} ({{.Org}})
Generated:	{{.Generated}}

Strategy:	{{.Strategy}}
Extra per month:	{{.Extra}}
Start month:	{{.Start}}
Total balance:	{{.TotalBalance}}
Minimum total:	{{.TotalMinimum}}
Estimated payoff:	{{.Payoff}}
Total interest:	{{.TotalInterest}}
Total paid:	{{.TotalPaid}}

Debts
Name	Balance	APR	Minimum	Due day
{{- range .Debts}}
{{.Name}}	{{.Balance}}	{{.APR}}	{{.MinPayment}}	{{.DueDay}}
{{- else}}
(no debts)
{{- end}}

Schedule (first {{.RowLimit}} months)
Month	Interest	Paid	Remaining
{{- range .Rows}}
{{.Month}}	{{.Interest}}	{{.Paid}}	{{.Remaining}}
{{- else}}
Enter balances to see payoff plan.
{{- end}}
{{- if .Truncated}}
... {{.TotalMonths}} months simulated in total
{{- end}}
`
