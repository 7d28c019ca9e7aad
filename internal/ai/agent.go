package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"kasirpos/internal/catalog"
	"kasirpos/internal/models"
	"kasirpos/internal/services"
)

// Agent answers admin questions about the shop by calling into the catalog
// and report services through Gemini function calling.
type Agent struct {
	catalog *catalog.Catalog
	reports *services.ReportService
	apiKey  string
}

func New(cat *catalog.Catalog, reports *services.ReportService, apiKey string) *Agent {
	return &Agent{catalog: cat, reports: reports, apiKey: apiKey}
}

func (a *Agent) Run(ctx context.Context, userMessage string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(a.apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")
	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are a POS assistant.

RULES:
1. UPDATE: If a user asks to update a product by NAME, do NOT ask for the ID.
   Call 'check_inventory' to find the ID, then 'update_product_price'.
2. READ: For PRICE, COST, STOCK or DETAILS of a product, call
   'check_inventory' and read the JSON to answer.
3. SALES: For sales/revenue questions use 'get_sales_report'.

USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_inventory",
					Description: "Get the full inventory list. Use this to find ANY product details like ID, Name, Price, Cost, or Stock.",
				},
				{
					Name:        "update_product_price",
					Description: "Update the price of a specific product using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"product_id": {Type: genai.TypeInteger, Description: "ID of the product"},
							"new_price":  {Type: genai.TypeNumber, Description: "New price"},
						},
						Required: []string{"product_id", "new_price"},
					},
				},
				{
					Name:        "create_product",
					Description: "Add a new product to the inventory",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"name":  {Type: genai.TypeString, Description: "Name of the product"},
							"price": {Type: genai.TypeNumber, Description: "Selling price"},
							"stock": {Type: genai.TypeInteger, Description: "Initial stock count"},
							"unit":  {Type: genai.TypeString, Description: "Unit (pcs, kg, ...)"},
						},
						Required: []string{"name", "price", "stock"},
					},
				},
				{
					Name:        "get_sales_report",
					Description: "Get total sales revenue for a date range.",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"start_date": {Type: genai.TypeString, Description: "Start date (YYYY-MM-DD)"},
							"end_date":   {Type: genai.TypeString, Description: "End date (YYYY-MM-DD)"},
						},
						Required: []string{"start_date", "end_date"},
					},
				},
			},
		},
	}

	session := model.StartChat()

	resp, err := session.SendMessage(ctx, genai.Text(systemPrompt))
	if err != nil {
		return "", err
	}

	// Tools may chain (look up an ID, then update); cap the loop so a
	// confused model cannot spin forever.
	for hops := 0; hops < 4; hops++ {
		call := firstFunctionCall(resp)
		if call == nil {
			return textOf(resp), nil
		}
		result, err := a.dispatch(ctx, *call)
		if err != nil {
			return "", err
		}
		resp, err = session.SendMessage(ctx, genai.FunctionResponse{
			Name:     call.Name,
			Response: result,
		})
		if err != nil {
			return "", err
		}
	}
	return textOf(resp), nil
}

func (a *Agent) dispatch(ctx context.Context, call genai.FunctionCall) (map[string]any, error) {
	switch call.Name {
	case "check_inventory":
		type simpleProduct struct {
			ID    int     `json:"id"`
			Name  string  `json:"name"`
			Stock int     `json:"stock"`
			Price float64 `json:"price"`
			Modal float64 `json:"modal"`
		}
		var list []simpleProduct
		for _, p := range a.catalog.Products() {
			list = append(list, simpleProduct{ID: p.ID, Name: p.Name, Stock: p.Stock, Price: p.Price, Modal: p.Modal})
		}
		buf, _ := json.Marshal(list)
		return map[string]any{"inventory": string(buf)}, nil

	case "update_product_price":
		id := int(call.Args["product_id"].(float64))
		newPrice := call.Args["new_price"].(float64)
		updated, err := a.catalog.UpdateProduct(ctx, id, map[string]any{"price": newPrice})
		if err != nil {
			return nil, err
		}
		status := "success"
		if updated == nil {
			status = "product id not found"
		}
		return map[string]any{"status": status, "new_price": newPrice}, nil

	case "create_product":
		p, err := a.catalog.CreateProduct(ctx, productFromArgs(call.Args))
		if err != nil {
			return nil, err
		}
		return map[string]any{"status": "created", "id": p.ID}, nil

	case "get_sales_report":
		start, err1 := time.Parse("2006-01-02", call.Args["start_date"].(string))
		end, err2 := time.Parse("2006-01-02", call.Args["end_date"].(string))
		if err1 != nil || err2 != nil {
			return map[string]any{"error": "dates must be in YYYY-MM-DD format"}, nil
		}
		end = end.Add(23*time.Hour + 59*time.Minute)
		report, err := a.reports.Range(ctx, start, end)
		if err != nil {
			return nil, err
		}
		return map[string]any{"revenue": report.TotalRevenue, "sales_count": report.TotalCount}, nil
	}
	return map[string]any{"error": "unknown tool " + call.Name}, nil
}

func productFromArgs(args map[string]any) models.Product {
	p := models.Product{IsActive: true, Unit: "pcs", CreatedBy: "ai-agent"}
	p.Name, _ = args["name"].(string)
	p.Price, _ = args["price"].(float64)
	if stock, ok := args["stock"].(float64); ok {
		p.Stock = int(stock)
	}
	if unit, ok := args["unit"].(string); ok && unit != "" {
		p.Unit = unit
	}
	return p
}

func firstFunctionCall(resp *genai.GenerateContentResponse) *genai.FunctionCall {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if call, ok := part.(genai.FunctionCall); ok {
			return &call
		}
	}
	return nil
}

func textOf(resp *genai.GenerateContentResponse) string {
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "I completed the action."
	}
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
