package content

import "fmt"

const heritagePrompt = `In a brief, elegant paragraph (around 100 words), describe the rich industrial heritage and craftsmanship of Sialkot, Pakistan.
Highlight its global reputation for producing high-quality goods like sports equipment, leather products, and surgical instruments.
Use an inspiring and professional tone.`

func productDescriptionPrompt(productName string) string {
	return fmt.Sprintf(`Create a compelling, short e-commerce product description for a product named %q.
The product is from Sialkot, Pakistan, a city known for its high-quality craftsmanship.
- Keep it under 50 words.
- Highlight quality and craftsmanship.
- Use an engaging and professional tone.
- Do not use markdown or formatting.`, productName)
}

func sloganPrompt(shop string) string {
	return fmt.Sprintf(`Generate a short, catchy, and inspiring e-commerce slogan (under 10 words) for '%s'.
The store sells high-quality goods from Sialkot, Pakistan, a city famous for craftsmanship in sports, leather, and surgical items.
The tone should be professional and trustworthy. Do not use quotation marks.`, shop)
}

func socialPostPrompt(shop, topic string) string {
	return fmt.Sprintf(`Generate a short, engaging, and professional social media post (e.g., for Instagram or Twitter) for '%s'.
The topic is: %q.
- Keep it under 280 characters.
- Use a friendly and enthusiastic tone.
- Include 2-3 relevant hashtags like #Sialkot, #MadeInPakistan, #Craftsmanship.
- Do not use markdown or formatting.`, shop, topic)
}

func supportReplyPrompt(shop, query string) string {
	return fmt.Sprintf(`You are a helpful and professional customer service agent for '%s'.
A customer has the following query: %q.
Generate a polite, empathetic, and helpful reply.
- Start with a friendly greeting.
- Address their concern directly.
- Offer a clear solution or next step.
- End on a positive and helpful note.
- Do not use markdown or formatting.`, shop, query)
}

func adCopyPrompt(shop, productName string) string {
	return fmt.Sprintf(`You are an expert digital marketing copywriter.
Generate a short, compelling ad copy (under 150 characters) for a product named %q from %s.
- Highlight its Sialkot-made quality and craftsmanship.
- Use persuasive language.
- Include a strong call-to-action like 'Shop Now' or 'Discover the Quality'.
- Do not use hashtags or markdown.`, productName, shop)
}
