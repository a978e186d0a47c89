package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-chain-ops/internal/database"
	"go-chain-ops/internal/reducers"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// RunAgent answers an operations question about the chain, letting
// the model call back into the store for stock and sales data.
func RunAgent(userMessage string, apiKey string) (string, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return "", err
	}
	defer client.Close()

	model := client.GenerativeModel("gemini-2.0-flash-001")

	today := time.Now().Format("2006-01-02")

	systemPrompt := fmt.Sprintf(`SYSTEM: Today is %s. You are the ops assistant for a multi-outlet restaurant chain. All money values are integer minor units (sen).

RULES:
1. STOCK: If a user asks which ingredients are running low, call 'check_low_stock' and summarize the result per outlet.
2. RESTOCK: If a user asks to set an ingredient's stock, call 'check_low_stock' first when you only have a name, then call 'update_ingredient_stock' with the id.
3. SALES: If the user asks for sales or revenue, use 'get_sales_report'. Report revenue in rupiah (divide sen by 100).

USER: %s`, today, userMessage)

	model.Tools = []*genai.Tool{
		{
			FunctionDeclarations: []*genai.FunctionDeclaration{
				{
					Name:        "check_low_stock",
					Description: "List every ingredient at or below its minimum stock, with id, name, unit, stock, min_stock and outlet_id.",
				},
				{
					Name:        "update_ingredient_stock",
					Description: "Overwrite the stock counter of an ingredient using its ID",
					Parameters: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"ingredient_id": {Type: genai.TypeInteger, Description: "ID of the ingredient"},
							"new_stock":     {Type: genai.TypeInteger, Description: "New stock level"},
						},
						Required: []string{"ingredient_id", "new_stock"},
					},
				},
				{
					Name:        "get_sales_report",
					Description: "Get total sales revenue and order count for a date range.",
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

	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			switch funcCall.Name {
			case "check_low_stock":
				return executeLowStock(ctx, session)
			case "update_ingredient_stock":
				return executeUpdateStock(ctx, session, funcCall), nil
			case "get_sales_report":
				return executeSalesReport(ctx, session, funcCall), nil
			}
		}
	}

	return printResponse(resp), nil
}

func executeLowStock(ctx context.Context, session *genai.ChatSession) (string, error) {
	ingredients, err := database.LowStockIngredients(database.DB)
	if err != nil {
		return "", err
	}

	type row struct {
		ID       uint64 `json:"id"`
		Name     string `json:"name"`
		Unit     string `json:"unit"`
		Stock    int64  `json:"stock"`
		MinStock int64  `json:"min_stock"`
		OutletID uint64 `json:"outlet_id"`
	}
	rows := make([]row, 0, len(ingredients))
	for _, g := range ingredients {
		rows = append(rows, row{
			ID:       g.ID,
			Name:     g.Name,
			Unit:     g.Unit,
			Stock:    g.Stock,
			MinStock: g.MinStock,
			OutletID: g.OutletID,
		})
	}

	jsonBytes, _ := json.Marshal(rows)

	finalResp, err := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "check_low_stock",
		Response: map[string]interface{}{"low_stock": string(jsonBytes)},
	})
	if err != nil {
		return "", err
	}

	return handleRecursiveToolCalls(ctx, session, finalResp), nil
}

// The model often follows a low-stock lookup with a restock call;
// allow one more round of tool use before giving up.
func handleRecursiveToolCalls(ctx context.Context, session *genai.ChatSession, resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if funcCall, ok := part.(genai.FunctionCall); ok {
			if funcCall.Name == "update_ingredient_stock" {
				return executeUpdateStock(ctx, session, funcCall)
			}
		}
	}
	return printResponse(resp)
}

func executeUpdateStock(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	ingredientID := uint64(args["ingredient_id"].(float64))
	newStock := int64(args["new_stock"].(float64))

	msg := "Success"
	if err := reducers.UpdateInventory(database.DB, ingredientID, newStock); err != nil {
		msg = err.Error()
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name:     "update_ingredient_stock",
		Response: map[string]interface{}{"status": msg, "new_stock": newStock},
	})
	return printResponse(finalResp)
}

func executeSalesReport(ctx context.Context, session *genai.ChatSession, funcCall genai.FunctionCall) string {
	args := funcCall.Args
	startStr := args["start_date"].(string)
	endStr := args["end_date"].(string)

	start, err1 := time.Parse("2006-01-02", startStr)
	end, err2 := time.Parse("2006-01-02", endStr)

	if err1 != nil || err2 != nil {
		return "Error: Dates must be in YYYY-MM-DD format."
	}
	end = end.Add(23*time.Hour + 59*time.Minute)

	report, err := database.GetSalesReport(database.DB, start, end)
	if err != nil {
		return "Error calculating sales."
	}

	finalResp, _ := session.SendMessage(ctx, genai.FunctionResponse{
		Name: "get_sales_report",
		Response: map[string]interface{}{
			"revenue":     report.TotalRevenue,
			"sales_count": report.TotalCount,
		},
	})
	return printResponse(finalResp)
}

func printResponse(resp *genai.GenerateContentResponse) string {
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			return string(txt)
		}
	}
	return "I completed the action."
}
