package handlers

import "github.com/gofiber/fiber/v2"

type LegalHandler struct {
	appName string
}

func NewLegalHandler(appName string) *LegalHandler {
	return &LegalHandler{appName: appName}
}

func (h *LegalHandler) PrivacyPolicy(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Privacy Policy - ` + h.appName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Privacy Policy</h1>
<p>Last updated: February 2026</p>
<h2>Information We Collect</h2>
<p>We collect your email address, the profile details you choose to share as a host or guest, and the addresses you enter so they can be placed on the community map.</p>
<h2>How We Use Your Information</h2>
<p>Your data is used solely to operate ` + h.appName + `, match hosts with guests in your community, and display your listing to other members.</p>
<h2>What Other Members See</h2>
<p>Hosts appear in the public directory without their phone number. Full host details and all guest details are visible to signed-in members only.</p>
<h2>Account Deletion</h2>
<p>You can delete your account and profiles at any time from the dashboard.</p>
<h2>Contact</h2>
<p>For questions about this policy, contact us at support@shulchan.app</p>
</body></html>`)
}

func (h *LegalHandler) TermsOfService(c *fiber.Ctx) error {
	return c.Type("html").SendString(`<!DOCTYPE html>
<html><head><title>Terms of Service - ` + h.appName + `</title>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>body{font-family:-apple-system,BlinkMacSystemFont,sans-serif;max-width:800px;margin:0 auto;padding:20px;color:#333}h1{color:#1a1a1a}h2{color:#444;margin-top:30px}</style>
</head><body>
<h1>Terms of Service</h1>
<p>Last updated: February 2026</p>
<h2>Acceptance</h2>
<p>By using ` + h.appName + `, you agree to these terms.</p>
<h2>Community Conduct</h2>
<p>Profiles must describe you truthfully. Meals are arranged between members directly; ` + h.appName + ` is a directory, not a party to the invitation.</p>
<h2>Content</h2>
<p>You are responsible for the notes and details on your profile. We may remove profiles that contain abusive or misleading content.</p>
<h2>Termination</h2>
<p>We may suspend accounts that violate these terms.</p>
</body></html>`)
}
