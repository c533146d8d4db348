package services

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"time"

	config "github.com/aurelienmx/skillmarket/configs"
	"github.com/aurelienmx/skillmarket/models"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// GenerateBookingConfirmation renders the confirmation template for an
// accepted booking, prints it to PDF through headless Chrome and uploads
// the result to Cloudinary. Returns the hosted URL.
func GenerateBookingConfirmation(booking models.Booking) (string, error) {
	htmlData, err := generateConfirmationHTML(booking)
	if err != nil {
		return "", fmt.Errorf("render confirmation template: %w", err)
	}

	pdfBytes, err := generatePDFFromHTML(htmlData)
	if err != nil {
		return "", fmt.Errorf("print confirmation to PDF: %w", err)
	}

	return uploadToCloudinary(pdfBytes, fmt.Sprintf("booking-%d", booking.ID))
}

func generateConfirmationHTML(booking models.Booking) (string, error) {
	tmpl, err := template.ParseFiles("templates/booking_confirmation.html")
	if err != nil {
		return "", err
	}

	data := struct {
		ClientName   string
		ProviderName string
		StartTime    string
		EndTime      string
		BookingID    uint
		IssuedAt     string
	}{
		ClientName:   booking.Client.FirstName + " " + booking.Client.LastName,
		ProviderName: booking.AvailabilitySlot.Provider.FirstName + " " + booking.AvailabilitySlot.Provider.LastName,
		StartTime:    booking.AvailabilitySlot.StartTime,
		EndTime:      booking.AvailabilitySlot.EndTime,
		BookingID:    booking.ID,
		IssuedAt:     time.Now().Format("January 2, 2006"),
	}

	var renderedHTML bytes.Buffer
	if err := tmpl.Execute(&renderedHTML, data); err != nil {
		return "", err
	}
	return renderedHTML.String(), nil
}

func generatePDFFromHTML(htmlContent string) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	var pdfBuffer []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, htmlContent).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			pdf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuffer = pdf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}
	return pdfBuffer, nil
}

func uploadToCloudinary(pdfBytes []byte, publicID string) (string, error) {
	cld, err := cloudinary.NewFromURL(config.Config("CLOUDINARY_URL"))
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, bytes.NewReader(pdfBytes), uploader.UploadParams{
		PublicID: publicID,
		Folder:   "skillmarket_confirmations",
	})
	if err != nil {
		return "", err
	}
	return result.SecureURL, nil
}
