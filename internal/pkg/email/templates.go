package email

// Email templates in HTML format

// BaseTemplate is the base layout for all emails
const BaseTemplate = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body {
            margin: 0;
            padding: 0;
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Arial, sans-serif;
            background-color: #f3f4f6;
            color: #374151;
        }
        .container {
            max-width: 600px;
            margin: 0 auto;
            padding: 40px 20px;
        }
        .card {
            background: #ffffff;
            border-radius: 16px;
            padding: 32px;
            border: 1px solid #e5e7eb;
        }
        .logo {
            text-align: center;
            margin-bottom: 24px;
        }
        .logo h1 {
            font-size: 28px;
            background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%);
            -webkit-background-clip: text;
            -webkit-text-fill-color: transparent;
            margin: 0;
        }
        h2 {
            color: #111827;
            font-size: 24px;
            margin: 0 0 16px;
        }
        p {
            color: #374151;
            font-size: 16px;
            line-height: 1.6;
            margin: 0 0 16px;
        }
        .btn {
            display: inline-block;
            background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%);
            color: #ffffff !important;
            text-decoration: none;
            padding: 14px 28px;
            border-radius: 8px;
            font-weight: 600;
            font-size: 16px;
            margin: 16px 0;
        }
        .footer {
            text-align: center;
            margin-top: 32px;
            color: #6b7280;
            font-size: 12px;
        }
        .highlight {
            color: #10b981;
            font-weight: 600;
        }
        .bonus-box {
            background: linear-gradient(135deg, #10b981 0%, #059669 100%);
            border-radius: 12px;
            padding: 24px;
            margin: 16px 0;
            text-align: center;
            color: #ffffff;
        }
        .bonus-box .amount {
            font-size: 42px;
            font-weight: bold;
            margin: 8px 0;
        }
        .info-box {
            background: #f9fafb;
            border-radius: 8px;
            padding: 16px;
            margin: 16px 0;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="card">
            <div class="logo"><h1>PromoHive</h1></div>
            {{.Content}}
        </div>
        <div class="footer">
            <p>This is an automated message from PromoHive.</p>
            <p>&copy; 2025 PromoHive. All rights reserved.</p>
        </div>
    </div>
</body>
</html>
`

// WelcomeTemplate is sent after an account is approved
const WelcomeTemplate = `
<h2>Welcome to PromoHive!</h2>
<p>Hi <strong>{{.UserName}}</strong>,</p>
<p>Great news! Your account has been <span class="highlight">approved</span> and you're ready to start earning.</p>
<div class="bonus-box">
    <p style="color:#ffffff;margin:0;">Welcome Bonus</p>
    <div class="amount">${{.BonusAmount}}</div>
    <p style="color:#d1fae5;margin:0;font-size:14px;">has been added to your account!</p>
</div>
<p>Browse available tasks, complete them, and watch your balance grow.</p>
<a href="{{.LoginURL}}" class="btn">Login to Your Account</a>
`

// SubmissionApprovedTemplate is sent when an admin approves a task submission
const SubmissionApprovedTemplate = `
<h2>Task Approved 🎉</h2>
<p>Hi <strong>{{.UserName}}</strong>,</p>
<p>Your submission for <strong>{{.TaskTitle}}</strong> has been <span class="highlight">approved</span>.</p>
<div class="info-box">
    <p style="margin:0;">Reward credited: <strong>${{.Amount}}</strong></p>
</div>
<a href="{{.DashboardURL}}" class="btn">View Your Balance</a>
`

// SubmissionRejectedTemplate is sent when an admin rejects a task submission
const SubmissionRejectedTemplate = `
<h2>Submission Reviewed</h2>
<p>Hi <strong>{{.UserName}}</strong>,</p>
<p>Unfortunately your submission for <strong>{{.TaskTitle}}</strong> was not approved.</p>
{{if .Notes}}
<div class="info-box">
    <p style="margin:0;">Reviewer notes: {{.Notes}}</p>
</div>
{{end}}
<p>You can pick up other available tasks at any time.</p>
<a href="{{.TasksURL}}" class="btn">Browse Tasks</a>
`
