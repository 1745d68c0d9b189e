package usecase

// teamTextTemplate is the plain-text notification sent to the studio inbox.
const teamTextTemplate = `NEW HIRE TEAM SUBMISSION - {{.Studio}}

CONTACT INFORMATION:
• Name: {{.Sub.Name}}
• Email: {{.Sub.Email}}
• Phone: {{.Sub.Phone}}
• Company: {{.Sub.Company}}
• Preferred Contact: {{.Sub.PreferredContact}}

PROJECT DETAILS:
• Project Type: {{.Sub.ProjectType}}
• Budget Range: {{.Sub.Budget}}
• Timeline: {{.Sub.Timeline}}

PROJECT DESCRIPTION:
{{.Sub.Message}}

Submitted on: {{.SubmittedAt}}

---
{{.Studio}} Team Notification System`

const teamHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>New Hire Team Submission</title>
</head>
<body style="margin: 0; background: #f8fafc;">
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #ffffff;">
    <div style="background: linear-gradient(135deg, #0ea5e9, #3b82f6); padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1 style="color: white; margin: 0; font-size: 24px;">New Hire Team Submission</h1>
        <p style="color: #e0f2fe; margin: 10px 0 0 0;">{{.Studio}} Expert Team Request</p>
    </div>
    <div style="padding: 30px; background: #f8fafc;">
        <div style="background: white; padding: 25px; border-radius: 8px; margin-bottom: 20px;">
            <h2 style="color: #1e293b; margin-top: 0; border-bottom: 2px solid #0ea5e9; padding-bottom: 10px;">Contact Information</h2>
            <table style="width: 100%; border-collapse: collapse;">
                <tr><td style="padding: 8px 0; font-weight: bold;">Name:</td><td style="padding: 8px 0;">{{.Sub.Name}}</td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Email:</td><td style="padding: 8px 0;"><a href="mailto:{{.Sub.Email}}" style="color: #0ea5e9;">{{.Sub.Email}}</a></td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Phone:</td><td style="padding: 8px 0;"><a href="tel:{{.Sub.Phone}}" style="color: #0ea5e9;">{{.Sub.Phone}}</a></td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Company:</td><td style="padding: 8px 0;">{{.Sub.Company}}</td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Preferred Contact:</td><td style="padding: 8px 0;">{{.Sub.PreferredContact}}</td></tr>
            </table>
        </div>
        <div style="background: white; padding: 25px; border-radius: 8px; margin-bottom: 20px;">
            <h2 style="color: #1e293b; margin-top: 0; border-bottom: 2px solid #10b981; padding-bottom: 10px;">Project Details</h2>
            <table style="width: 100%; border-collapse: collapse;">
                <tr><td style="padding: 8px 0; font-weight: bold;">Project Type:</td><td style="padding: 8px 0;">{{.Sub.ProjectType}}</td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Budget Range:</td><td style="padding: 8px 0;">{{.Sub.Budget}}</td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Timeline:</td><td style="padding: 8px 0;">{{.Sub.Timeline}}</td></tr>
            </table>
        </div>
        <div style="background: white; padding: 25px; border-radius: 8px;">
            <h2 style="color: #1e293b; margin-top: 0; border-bottom: 2px solid #f59e0b; padding-bottom: 10px;">Project Description</h2>
            <div style="background: #fef3c7; padding: 15px; border-radius: 6px; border-left: 4px solid #f59e0b;">
                <p style="margin: 0; white-space: pre-wrap; line-height: 1.6;">{{.Sub.Message}}</p>
            </div>
        </div>
    </div>
    <div style="background: #1e293b; color: white; padding: 20px; text-align: center; border-radius: 0 0 8px 8px;">
        <p style="margin: 0; font-size: 14px; color: #94a3b8;">Submitted on: {{.SubmittedAt}}</p>
        <p style="margin: 5px 0 0 0; font-size: 12px; color: #64748b;">{{.Studio}} Team Notification System</p>
    </div>
</div>
</body>
</html>`

// clientTextTemplate deliberately leaves out the free-text project description.
const clientTextTemplate = `Hi {{.Sub.Name}},

Thank you for your interest in {{.Studio}}'s expert team!

We've received your project request and our team is excited to learn more about your vision. Here's what happens next:

✅ Your submission has been received
✅ Our experts will review your requirements
✅ We'll contact you {{.ResponseTime}} via {{.Sub.PreferredContact}}

Project Summary:
• Type: {{.Sub.ProjectType}}
• Budget: {{.Sub.Budget}}
• Timeline: {{.Sub.Timeline}}

We're committed to building something extraordinary together!

Best regards,
The {{.Studio}} Team

---
{{.Studio}} - Building Tomorrow's Technology Today`

const clientHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Thank you</title>
</head>
<body style="margin: 0; background: #f8fafc;">
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: #ffffff;">
    <div style="background: linear-gradient(135deg, #0ea5e9, #3b82f6); padding: 30px; text-align: center; border-radius: 8px 8px 0 0;">
        <h1 style="color: white; margin: 0; font-size: 24px;">Thank You, {{.Sub.Name}}!</h1>
        <p style="color: #e0f2fe; margin: 10px 0 0 0;">Your project request has been received</p>
    </div>
    <div style="padding: 30px; background: #f8fafc;">
        <div style="background: white; padding: 25px; border-radius: 8px; margin-bottom: 20px;">
            <h2 style="color: #1e293b; margin-top: 0; border-bottom: 2px solid #0ea5e9; padding-bottom: 10px;">What Happens Next?</h2>
            <ul style="color: #1f2937; line-height: 1.6;">
                <li>Your submission has been received</li>
                <li>Our experts will review your requirements</li>
                <li>We'll contact you {{.ResponseTime}} via {{.Sub.PreferredContact}}</li>
            </ul>
        </div>
        <div style="background: white; padding: 25px; border-radius: 8px;">
            <h2 style="color: #1e293b; margin-top: 0; border-bottom: 2px solid #10b981; padding-bottom: 10px;">Your Project Summary</h2>
            <table style="width: 100%; border-collapse: collapse;">
                <tr><td style="padding: 8px 0; font-weight: bold;">Project Type:</td><td style="padding: 8px 0;">{{.Sub.ProjectType}}</td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Budget Range:</td><td style="padding: 8px 0;">{{.Sub.Budget}}</td></tr>
                <tr><td style="padding: 8px 0; font-weight: bold;">Timeline:</td><td style="padding: 8px 0;">{{.Sub.Timeline}}</td></tr>
            </table>
        </div>
    </div>
    <div style="background: #1e293b; color: white; padding: 20px; text-align: center; border-radius: 0 0 8px 8px;">
        <p style="margin: 0; font-size: 14px; color: #94a3b8;">Best regards,<br>The {{.Studio}} Team</p>
        <p style="margin: 5px 0 0 0; font-size: 12px; color: #64748b;">{{.Studio}} - Building Tomorrow's Technology Today</p>
    </div>
</div>
</body>
</html>`
