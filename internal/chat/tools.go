package chat

// assistantTools declares the functions the model may call. Keep these in
// sync with the executor in service.go.
func assistantTools() []Tool {
	return []Tool{
		{
			FunctionDeclarations: []FunctionDeclaration{
				{
					Name:        "query_products",
					Description: "Query the products table to get information about available products, their prices, categories, and stock",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"filters": map[string]interface{}{
								"type":        "object",
								"description": "Filters to apply (e.g., category, name contains)",
							},
							"limit": map[string]interface{}{
								"type":        "number",
								"description": "Maximum number of results to return",
							},
						},
					},
				},
				{
					Name:        "query_orders",
					Description: "Query orders table to get order information, status, and customer details",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"customer_id": map[string]interface{}{
								"type":        "string",
								"description": "Filter by customer ID",
							},
							"status": map[string]interface{}{
								"type":        "string",
								"description": "Filter by order status",
							},
						},
					},
				},
				{
					Name:        "count_records",
					Description: "Count records in any table (products, orders, users)",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"table": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"products", "orders", "users"},
								"description": "Table to count records from",
							},
						},
						"required": []string{"table"},
					},
				},
				{
					Name:        "navigate_to_page",
					Description: "Navigate to a different page on the website. Use this when user wants to go to marketplace, dashboard, orders, etc.",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"page": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"/", "/marketplace", "/dashboard", "/orders", "/about", "/vendors", "/fertilizer-friend"},
								"description": "The page route to navigate to",
							},
						},
						"required": []string{"page"},
					},
				},
				{
					Name:        "scroll_to_section",
					Description: "Scroll to a specific section on the current page. Use for hero, features, pricing, problem, solution sections.",
					Parameters: map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"section": map[string]interface{}{
								"type":        "string",
								"enum":        []string{"hero", "problem", "solution", "features", "marketplace", "fertilizer", "pricing", "footer"},
								"description": "The section to scroll to",
							},
						},
						"required": []string{"section"},
					},
				},
			},
		},
	}
}

const systemPrompt = `You are an AI assistant for AgriConnect, an agricultural marketplace platform. You have access to the following:

DATABASE TABLES:
- products: Contains agricultural products with name, price, category, vendor, stock_quantity
- orders: Contains order information with customer details, status, delivery address
- users: Contains user profiles with name, email, phone, user_type

NAVIGATION CAPABILITIES:
- You can navigate users to different pages: home (/), marketplace, dashboard, orders, about, vendors, fertilizer-friend
- You can scroll to sections on the home page: hero, problem, solution, features, marketplace, fertilizer, pricing, footer

INSTRUCTIONS:
- Use database query tools when users ask about products, prices, orders, or statistics
- Use navigation tools when users want to go to a specific page or section (e.g., "take me to marketplace", "show me pricing")
- Always be helpful, conversational, and provide accurate information
- When navigating, confirm the action (e.g., "Taking you to the marketplace now!")
- Understand voice commands naturally (e.g., "tomato prices" = query products for tomatoes)`

const systemAck = "I understand. I will help users with product information, orders, and other queries about AgriConnect."
